package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`

	// average grade the user has given plus how many reviews they wrote
	userReviewStats = `SELECT u.username, COALESCE(AVG(r.grade), 0), COUNT(r.id)
		FROM users u
		LEFT JOIN reviews r ON r.author = u.id
		WHERE u.id = $1
		GROUP BY u.id;`

	// average grade received across the user's programs plus how many
	// programs they have published; unreviewed programs count as grade 0
	userProgramStats = `SELECT COALESCE(AVG(COALESCE(r.grade, 0)), 0), COUNT(DISTINCT p.id)
		FROM users u
		LEFT JOIN programs p ON p.author = u.id
		LEFT JOIN reviews r ON r.program = p.id
		WHERE u.id = $1;`

	getProgram = `SELECT p.id, p.name, u.id, u.username, p.source_link,
			p.download_link, p.description, p.created_at, COALESCE(AVG(r.grade), 0)
		FROM programs p
		JOIN users u ON u.id = p.author
		LEFT JOIN reviews r ON r.program = p.id
		WHERE p.id = $1
		GROUP BY p.id, u.id;`

	getProgramTags = `SELECT c.name, cv.value
		FROM program_class_values pcv
		JOIN class_values cv ON cv.id = pcv.value
		JOIN classes c ON c.id = cv.class
		WHERE pcv.program = $1
		ORDER BY c.name, cv.value;`

	createProgram = `INSERT INTO programs (author, name, source_link, download_link, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;`

	createProgramTag = `INSERT INTO program_class_values (program, value)
		VALUES ($1, $2);`

	updateProgram = `UPDATE programs
		SET name = $1, source_link = $2, download_link = $3, description = $4
		WHERE id = $5 AND author = $6;`

	deleteProgramTags    = `DELETE FROM program_class_values WHERE program = $1;`
	deleteProgramReviews = `DELETE FROM reviews WHERE program = $1;`
	deleteProgram        = `DELETE FROM programs WHERE id = $1;`

	createReview = `INSERT INTO reviews (author, program, grade, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`

	getReviews = `SELECT r.id, r.grade, r.comment, u.id, u.username
		FROM reviews r
		JOIN users u ON u.id = r.author
		WHERE r.program = $1
		ORDER BY r.id ASC;`

	listClasses = `SELECT c.id, c.name, cv.id, cv.value
		FROM classes c
		JOIN class_values cv ON cv.class = c.id
		ORDER BY c.name, cv.value;`

	listClassIDs = `SELECT id FROM classes ORDER BY name;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildProgramListingQuery builds the paged catalog listing query. An empty
// searchText produces the plain listing; otherwise a case-insensitive
// substring filter is applied to name and description. One extra row beyond
// itemsPerPage is requested so the caller can detect a next page without a
// separate count query.
func buildProgramListingQuery(searchText string, page int, itemsPerPage int) (string, []any, error) {
	builder := psql.
		Select("p.id", "p.name", "p.description", "u.id", "u.username", "COALESCE(AVG(r.grade), 0)").
		From("programs p").
		Join("users u ON u.id = p.author").
		LeftJoin("reviews r ON r.program = p.id")

	if searchText != "" {
		pattern := "%" + searchText + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.description": pattern},
		})
	}

	return builder.
		GroupBy("p.id", "u.id").
		OrderBy("p.id DESC").
		Limit(uint64(itemsPerPage + 1)).
		Offset(uint64(page * itemsPerPage)).
		ToSql()
}

// buildUserProgramsQuery builds the paged per-user listing. The LEFT JOIN
// starts from users so that a user with zero programs still yields one row
// (with NULL program columns) and can be told apart from a missing user.
// Ordered by program id ascending, unlike the global listing.
func buildUserProgramsQuery(userID int64, page int, itemsPerPage int) (string, []any, error) {
	return psql.
		Select("u.id", "u.username", "p.id", "p.name", "p.description", "COALESCE(AVG(r.grade), 0)").
		From("users u").
		LeftJoin("programs p ON p.author = u.id").
		LeftJoin("reviews r ON r.program = p.id").
		Where(sq.Eq{"u.id": userID}).
		GroupBy("u.id", "p.id").
		OrderBy("p.id ASC").
		Limit(uint64(itemsPerPage + 1)).
		Offset(uint64(page * itemsPerPage)).
		ToSql()
}
