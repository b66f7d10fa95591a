package assessment

import "github.com/cgabhane/author-website/internal/model"

const (
	// MaxScorePerPillar is the best possible subtotal for one pillar
	MaxScorePerPillar = 12
	// TotalMaxScore is the best possible total across all pillars
	TotalMaxScore = 60
)

var pillarNames = map[model.Pillar]string{
	model.PillarCloud:     "Cloud Fundamentals",
	model.PillarAI:        "AI/ML Basics",
	model.PillarDevOps:    "DevOps & Automation",
	model.PillarSecurity:  "Security & Compliance",
	model.PillarRealWorld: "Real-World Application",
}

// PillarName returns the display name of p, or p itself if unknown
func PillarName(p model.Pillar) string {
	if name, ok := pillarNames[p]; ok {
		return name
	}
	return string(p)
}

var bank = []model.Question{
	// Cloud Fundamentals
	{
		ID:     1,
		Pillar: model.PillarCloud,
		Prompt: "Which statement about serverless computing is most accurate?",
		Options: []model.Option{
			{Text: "You manage the underlying servers", Points: 0},
			{Text: "You pay only for actual execution time and resources used", Points: 4},
			{Text: "It's always slower than traditional VMs", Points: 0},
			{Text: "It requires Docker containers", Points: 1},
		},
		Explanation: "Serverless computing abstracts server management and charges based on actual resource consumption.",
	},
	{
		ID:     2,
		Pillar: model.PillarCloud,
		Prompt: "What is the primary benefit of using Infrastructure as Code (IaC)?",
		Options: []model.Option{
			{Text: "It makes infrastructure changes faster to deploy", Points: 2},
			{Text: "It enables version control, repeatability, and automation of infrastructure", Points: 4},
			{Text: "It eliminates the need for cloud providers", Points: 0},
			{Text: "It reduces cloud costs by 50%", Points: 0},
		},
		Explanation: "IaC's main advantage is treating infrastructure as versionable, testable code.",
	},
	{
		ID:     3,
		Pillar: model.PillarCloud,
		Prompt: "A company has unpredictable workloads that spike during business hours. Which pricing model is most cost-effective?",
		Options: []model.Option{
			{Text: "Reserved instances for all capacity", Points: 0},
			{Text: "On-demand instances only", Points: 1},
			{Text: "Spot instances for all workloads", Points: 1},
			{Text: "Reserved instances for baseline + auto-scaling on-demand for spikes", Points: 4},
		},
		Explanation: "Hybrid approach optimizes costs: reserved for predictable baseline, on-demand for variable peaks.",
	},

	// AI/ML Basics
	{
		ID:     4,
		Pillar: model.PillarAI,
		Prompt: "What is the main purpose of RAG (Retrieval Augmented Generation)?",
		Options: []model.Option{
			{Text: "To reduce the size of language models", Points: 1},
			{Text: "To add external, up-to-date knowledge to LLM responses", Points: 4},
			{Text: "To speed up model training", Points: 0},
			{Text: "To encrypt sensitive data", Points: 0},
		},
		Explanation: "RAG retrieves relevant information from external sources to augment LLM responses with current, factual data.",
	},
	{
		ID:     5,
		Pillar: model.PillarAI,
		Prompt: "In an AI agent architecture, what is the role of the 'planning' component?",
		Options: []model.Option{
			{Text: "To execute tasks immediately", Points: 1},
			{Text: "To break down complex goals into actionable steps", Points: 4},
			{Text: "To store conversation history", Points: 1},
			{Text: "To generate random responses", Points: 0},
		},
		Explanation: "The planning component decomposes high-level objectives into a sequence of executable actions.",
	},
	{
		ID:     6,
		Pillar: model.PillarAI,
		Prompt: "Which scenario is best suited for fine-tuning a language model rather than using prompt engineering?",
		Options: []model.Option{
			{Text: "You need to adjust response tone for a one-time task", Points: 0},
			{Text: "You want domain-specific behavior across thousands of queries", Points: 4},
			{Text: "You have limited training data (less than 100 examples)", Points: 1},
			{Text: "You need quick prototyping without infrastructure", Points: 1},
		},
		Explanation: "Fine-tuning is optimal when you need consistent, specialized behavior at scale with sufficient training data.",
	},

	// DevOps & Automation
	{
		ID:     7,
		Pillar: model.PillarDevOps,
		Prompt: "What is the key difference between containers and virtual machines?",
		Options: []model.Option{
			{Text: "Containers are slower but more secure", Points: 0},
			{Text: "Containers share the host OS kernel, VMs include full OS", Points: 4},
			{Text: "VMs are always cheaper to run", Points: 0},
			{Text: "Containers can't run Linux applications", Points: 0},
		},
		Explanation: "Containers virtualize the OS, sharing the kernel, while VMs virtualize hardware with separate OS instances.",
	},
	{
		ID:     8,
		Pillar: model.PillarDevOps,
		Prompt: "In a CI/CD pipeline, when should you run security scans?",
		Options: []model.Option{
			{Text: "Only in production after deployment", Points: 0},
			{Text: "Once per month manually", Points: 0},
			{Text: "As early as possible - during build and before deployment", Points: 4},
			{Text: "Security scans are not needed in CI/CD", Points: 0},
		},
		Explanation: "'Shift left' security means detecting vulnerabilities early in the development pipeline to reduce fix costs.",
	},
	{
		ID:     9,
		Pillar: model.PillarDevOps,
		Prompt: "What is the primary goal of observability in distributed systems?",
		Options: []model.Option{
			{Text: "To collect as many logs as possible", Points: 1},
			{Text: "To understand system behavior and troubleshoot unknown issues", Points: 4},
			{Text: "To replace all monitoring tools", Points: 0},
			{Text: "To reduce infrastructure costs", Points: 1},
		},
		Explanation: "Observability enables you to ask arbitrary questions about system behavior, not just monitor predefined metrics.",
	},

	// Security & Compliance
	{
		ID:     10,
		Pillar: model.PillarSecurity,
		Prompt: "What is the core principle of Zero Trust security?",
		Options: []model.Option{
			{Text: "Trust everything inside the network perimeter", Points: 0},
			{Text: "Never trust, always verify - even internal resources", Points: 4},
			{Text: "Only verify external users", Points: 1},
			{Text: "Disable all authentication", Points: 0},
		},
		Explanation: "Zero Trust assumes breach and requires verification for every access request, internal or external.",
	},
	{
		ID:     11,
		Pillar: model.PillarSecurity,
		Prompt: "Which practice is most important for AI ethics and compliance?",
		Options: []model.Option{
			{Text: "Using the largest model available", Points: 0},
			{Text: "Documenting decision-making processes and maintaining audit trails", Points: 4},
			{Text: "Keeping all AI systems closed-source", Points: 0},
			{Text: "Avoiding human oversight", Points: 0},
		},
		Explanation: "Transparency and accountability through documentation are foundational to ethical AI governance.",
	},
	{
		ID:     12,
		Pillar: model.PillarSecurity,
		Prompt: "What is the primary risk of storing secrets (API keys, passwords) in code repositories?",
		Options: []model.Option{
			{Text: "It slows down the application", Points: 0},
			{Text: "It exposes credentials to anyone with repository access, including in history", Points: 4},
			{Text: "It makes code harder to read", Points: 0},
			{Text: "It violates coding style guidelines", Points: 1},
		},
		Explanation: "Secrets in code can be exposed through repository access, git history, or public forks, leading to security breaches.",
	},

	// Real-World Application
	{
		ID:     13,
		Pillar: model.PillarRealWorld,
		Prompt: "A company wants to migrate 500 VMs to the cloud with minimal downtime. What's the best approach?",
		Options: []model.Option{
			{Text: "Migrate all VMs at once over a weekend", Points: 1},
			{Text: "Rebuild everything as cloud-native microservices first", Points: 1},
			{Text: "Phased migration: pilot group, validate, then iterative waves", Points: 4},
			{Text: "Keep everything on-premise and use cloud only for backup", Points: 0},
		},
		Explanation: "Phased migration reduces risk, allows learning from early phases, and ensures business continuity.",
	},
	{
		ID:     14,
		Pillar: model.PillarRealWorld,
		Prompt: "Your AI model shows 95% accuracy in testing but performs poorly in production. What's the likely issue?",
		Options: []model.Option{
			{Text: "The model needs to be larger", Points: 0},
			{Text: "Training data doesn't represent real-world scenarios (data drift)", Points: 4},
			{Text: "Production servers are too slow", Points: 1},
			{Text: "You need more test cases", Points: 1},
		},
		Explanation: "High test accuracy with poor production performance indicates training/production data mismatch.",
	},
	{
		ID:     15,
		Pillar: model.PillarRealWorld,
		Prompt: "A client asks for a cost estimate to 'move to the cloud.' What should you do first?",
		Options: []model.Option{
			{Text: "Give them an average industry cost immediately", Points: 0},
			{Text: "Recommend the most expensive cloud provider", Points: 0},
			{Text: "Conduct a discovery phase: assess current state, requirements, and workloads", Points: 4},
			{Text: "Suggest they stay on-premise", Points: 0},
		},
		Explanation: "Accurate cloud cost estimates require understanding current infrastructure, workload patterns, and business requirements.",
	},
}

var byID = func() map[int]int {
	idx := make(map[int]int, len(bank))
	for i, q := range bank {
		idx[q.ID] = i
	}
	return idx
}()

// Questions returns a copy of the question bank in presentation order
func Questions() []model.Question {
	out := make([]model.Question, len(bank))
	for i, q := range bank {
		out[i] = cloneQuestion(q)
	}
	return out
}

// QuestionByID looks up a question in the bank
func QuestionByID(id int) (model.Question, bool) {
	i, ok := byID[id]
	if !ok {
		return model.Question{}, false
	}
	return cloneQuestion(bank[i]), true
}

// PublicQuestions returns the bank with point values hidden
func PublicQuestions() []model.PublicQuestion {
	out := make([]model.PublicQuestion, len(bank))
	for i, q := range bank {
		out[i] = q.Public()
	}
	return out
}

func cloneQuestion(q model.Question) model.Question {
	q.Options = append([]model.Option(nil), q.Options...)
	return q
}
