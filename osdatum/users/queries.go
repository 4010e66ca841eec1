package users

const (
	// insert-if-absent: the unique index on email makes the lookup-then-create
	// sequence safe under concurrent registration. When another writer wins
	// the race, no row comes back and the caller re-runs the lookup.
	queryCreate = `
		INSERT INTO users (email, name, picture_url, provider_subject_id, subscription_type)
		VALUES ($1, $2, $3, $4, 'free')
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, name, picture_url, provider_subject_id, subscription_type, created_at
	`

	queryFindByEmail = `
		SELECT id, email, name, picture_url, provider_subject_id, subscription_type, created_at
		FROM users
		WHERE email = $1
	`

	queryFindBySubjectID = `
		SELECT id, email, name, picture_url, provider_subject_id, subscription_type, created_at
		FROM users
		WHERE provider_subject_id = $1
	`
)
