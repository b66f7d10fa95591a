package service

import (
	"testing"

	"github.com/cgabhane/author-website/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_ListPostsOmitsBodies(t *testing.T) {
	svc := NewContentService()

	list := svc.ListPosts()
	require.Len(t, list, 3)
	for _, p := range list {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Title)
		assert.Nil(t, p.Body)
	}
}

func TestContent_GetPost(t *testing.T) {
	svc := NewContentService()

	post, err := svc.GetPost("cloud-migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, post.Body)

	post.Body[0].Heading = "changed"
	again, err := svc.GetPost("cloud-migrations")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Body[0].Heading)

	_, err = svc.GetPost("nope")
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestContent_PressKitIsCopy(t *testing.T) {
	svc := NewContentService()

	kit := svc.PressKit()
	require.NotEmpty(t, kit.SpeakingTopics)
	kit.Contact["email"] = "changed"
	kit.SpeakingTopics[0] = "changed"

	fresh := svc.PressKit()
	assert.NotEqual(t, "changed", fresh.Contact["email"])
	assert.NotEqual(t, "changed", fresh.SpeakingTopics[0])
}
