package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildProgramListingQuery_PlainListing(t *testing.T) {
	query, args, err := buildProgramListingQuery("", 0, 10)
	require.NoError(t, err)

	// no search filter means no query arguments at all
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from programs p")
	require.Contains(t, q, "join users u on u.id = p.author")
	require.Contains(t, q, "left join reviews r on r.program = p.id")
	require.Contains(t, q, "group by p.id, u.id")
	require.Contains(t, q, "order by p.id desc")
	assert.NotContains(t, q, "ilike")

	// one extra row beyond the page size for has-more detection
	require.Contains(t, q, "limit 11")
	require.Contains(t, q, "offset 0")
}

func Test_buildProgramListingQuery_WithSearchText(t *testing.T) {
	query, args, err := buildProgramListingQuery("keeper", 0, 10)
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.Equal(t, "%keeper%", args[0])
	assert.Equal(t, "%keeper%", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "p.name ilike")
	require.Contains(t, q, "p.description ilike")
	require.Contains(t, q, " or ")

	// placeholder format should be $N (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")
}

func Test_buildProgramListingQuery_Paging(t *testing.T) {
	query, _, err := buildProgramListingQuery("", 3, 10)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "limit 11")
	require.Contains(t, q, "offset 30")
}

func Test_buildUserProgramsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildUserProgramsQuery(42, 0, 10)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from users u")
	require.Contains(t, q, "left join programs p on p.author = u.id")
	require.Contains(t, q, "left join reviews r on r.program = p.id")
	require.Contains(t, q, "group by u.id, p.id")

	// per-user listing is oldest first, unlike the global catalog
	require.Contains(t, q, "order by p.id asc")

	require.Contains(t, q, "limit 11")
	require.Contains(t, query, "$1")
}

func Test_buildUserProgramsQuery_Paging(t *testing.T) {
	query, _, err := buildUserProgramsQuery(42, 2, 5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "limit 6")
	require.Contains(t, q, "offset 10")
}
