package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
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
		) VALUES (
			:id,
			:title,
			:content,
			:summary,
			:image,
			:author,
			:tags,
			:published,
			:comment_ids,
			:views,
			:likes,
			:created_at,
			:updated_at
		)
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

	queryGetPublishedBlogs = `
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
		WHERE published = TRUE
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountPublishedBlogs = `
		SELECT COUNT(*)
		FROM blogs
		WHERE published = TRUE
	`

	querySearchPublishedBlogs = `
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
		WHERE published = TRUE
		  AND (title ILIKE :search OR content ILIKE :search OR summary ILIKE :search)
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountSearchPublishedBlogs = `
		SELECT COUNT(*)
		FROM blogs
		WHERE published = TRUE
		  AND (title ILIKE :search OR content ILIKE :search OR summary ILIKE :search)
	`

	queryGetBlogsByAuthor = `
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
		WHERE author = :author
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByAuthor = `
		SELECT COUNT(*)
		FROM blogs
		WHERE author = :author
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			content = :content,
			summary = :summary,
			image = :image,
			tags = :tags,
			published = :published,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateBlogViews = `
		UPDATE blogs
		SET views = :views
		WHERE id = :id
	`

	queryUpdateBlogLikes = `
		UPDATE blogs
		SET likes = :likes
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
