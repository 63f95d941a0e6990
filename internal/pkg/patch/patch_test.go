//go:build unit

package patch_test

import (
	"testing"

	"bookstore-api/internal/pkg/patch"
	"bookstore-api/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "new", patch.Coalesce(ptr.Of("new"), "old"))
	assert.Equal(t, "old", patch.Coalesce[string](nil, "old"))
	assert.Equal(t, "", patch.Coalesce(ptr.Of(""), "old"))
}

func TestFirst(t *testing.T) {
	assert.Nil(t, patch.First[string]())
	assert.Nil(t, patch.First[string](nil, nil))
	assert.Equal(t, "nested", *patch.First(ptr.Of("nested"), ptr.Of("flat")))
	assert.Equal(t, "flat", *patch.First(nil, ptr.Of("flat")))
}
