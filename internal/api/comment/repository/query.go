package commentRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			blog_id,
			text,
			user_name,
			user_email,
			user_image,
			created_at
		) VALUES (
			:id,
			:blog_id,
			:text,
			:user_name,
			:user_email,
			:user_image,
			:created_at
		)
	`

	queryListComments = `
		SELECT
			id,
			blog_id,
			text,
			user_name,
			user_email,
			user_image,
			created_at
		FROM comments
		ORDER BY created_at ASC, id ASC
	`

	queryListCommentsByBlogID = `
		SELECT
			id,
			blog_id,
			text,
			user_name,
			user_email,
			user_image,
			created_at
		FROM comments
		WHERE blog_id = :blog_id
		ORDER BY created_at ASC, id ASC
	`
)
