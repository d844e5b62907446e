package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			name,
			email,
			bio,
			password,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:email,
			:bio,
			:password,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			name,
			email,
			bio,
			password,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			name,
			email,
			bio,
			password,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = :name,
			bio = :bio,
			updated_at = :updated_at
		WHERE id = :id
	`
)
