// AngelaMos | 2026
// dto_test.go

package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListUsersParamsNormalize(t *testing.T) {
	params := ListUsersParams{}
	params.Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)

	params = ListUsersParams{Page: -3, PageSize: 500}
	params.Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.PageSize)

	params = ListUsersParams{Page: 4, PageSize: 25}
	params.Normalize()
	assert.Equal(t, 4, params.Page)
	assert.Equal(t, 25, params.PageSize)
}

func TestListUsersParamsOffset(t *testing.T) {
	params := ListUsersParams{Page: 1, PageSize: 20}
	assert.Equal(t, 0, params.Offset())

	params = ListUsersParams{Page: 3, PageSize: 20}
	assert.Equal(t, 40, params.Offset())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `back\\slash`, escapeLike(`back\slash`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
