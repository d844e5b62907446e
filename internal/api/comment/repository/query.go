package commentRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			content,
			blog_id,
			user_id,
			created_at
		) VALUES (
			:id,
			:content,
			:blog_id,
			:user_id,
			:created_at
		)
	`

	queryGetCommentByID = `
		SELECT
			id,
			content,
			blog_id,
			user_id,
			created_at
		FROM comments
		WHERE id = :id
	`

	queryGetCommentsByBlogID = `
		SELECT
			c.id,
			c.content,
			c.blog_id,
			c.user_id,
			c.created_at,
			u.name AS user_name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = :blog_id
		ORDER BY c.created_at DESC
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			content,
			summary,
			image,
			author,
			tags,
			published,
			comment_ids,
			views,
			likes,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryUpdateBlogCommentIDs = `
		UPDATE blogs
		SET comment_ids = :comment_ids
		WHERE id = :id
	`
)
