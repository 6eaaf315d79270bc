package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			image,
			category,
			short_description,
			long_description,
			created_at
		) VALUES (
			:id,
			:title,
			:image,
			:category,
			:short_description,
			:long_description,
			:created_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			image,
			category,
			short_description,
			long_description,
			created_at
		FROM blogs
		WHERE id = :id
	`

	// queryListBlogs and queryCountBlogs take the WHERE clause built by buildListWhere.
	queryListBlogs = `
		SELECT
			id,
			title,
			image,
			category,
			short_description,
			long_description,
			created_at
		FROM blogs
		%s
		ORDER BY created_at ASC, id ASC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogs = `
		SELECT COUNT(*)
		FROM blogs
		%s
	`

	queryUpsertBlog = `
		INSERT INTO blogs (
			id,
			title,
			image,
			category,
			short_description,
			long_description,
			created_at
		) VALUES (
			:id,
			:title,
			:image,
			:category,
			:short_description,
			:long_description,
			:created_at
		)
		ON CONFLICT (id) DO UPDATE SET
			title = CASE WHEN :set_title THEN EXCLUDED.title ELSE blogs.title END,
			image = CASE WHEN :set_image THEN EXCLUDED.image ELSE blogs.image END,
			category = CASE WHEN :set_category THEN EXCLUDED.category ELSE blogs.category END,
			short_description = CASE WHEN :set_short_description THEN EXCLUDED.short_description ELSE blogs.short_description END,
			long_description = CASE WHEN :set_long_description THEN EXCLUDED.long_description ELSE blogs.long_description END
		RETURNING (xmax = 0) AS inserted
	`

	queryListCategories = `
		SELECT DISTINCT category
		FROM blogs
		WHERE category <> ''
		ORDER BY category ASC
	`
)
