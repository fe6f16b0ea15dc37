package flagstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemFlagStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemFlagStore()

	v, err := s.Get(ctx, "member-1")
	assert.NoError(err)
	assert.Empty(v)

	assert.NoError(s.Add(ctx, "member-1", []string{"protected", "friend"}))
	assert.NoError(s.Add(ctx, "member-1", []string{"protected"}))
	v, err = s.Get(ctx, "member-1")
	assert.NoError(err)
	assert.ElementsMatch([]string{"protected", "friend"}, v)

	assert.NoError(s.Remove(ctx, "member-1", []string{"friend", "not-set"}))
	v, err = s.Get(ctx, "member-1")
	assert.NoError(err)
	assert.Equal([]string{"protected"}, v)
}
