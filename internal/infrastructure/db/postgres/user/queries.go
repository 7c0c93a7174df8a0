package user

const (
	SelectExistsByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	SelectUserByID = `
		SELECT id, name, email, password_hash, token, created, modified, last_login, is_active
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT id, name, email, password_hash, token, created, modified, last_login, is_active
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (id, name, email, password_hash, token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, name, email, password_hash, token, created, modified, last_login, is_active
	`
	InsertPhone = `
		INSERT INTO phones (user_id, number, citycode, countrycode)
		VALUES ($1, $2, $3, $4)
	`
	SelectPhonesByUserID = `
		SELECT number, citycode, countrycode
		FROM phones
		WHERE user_id = $1
		ORDER BY id
	`
	UpdateUserToken = `
		UPDATE users
		SET token = $1,
		    last_login = now(),
		    modified = now()
		WHERE id = $2
		RETURNING
		  id, name, email, password_hash, token, created, modified, last_login, is_active
	`
	UpdateUserLastLogin = `
		UPDATE users
		SET last_login = now(),
		    modified = now()
		WHERE id = $1
		RETURNING
		  id, name, email, password_hash, token, created, modified, last_login, is_active
	`
)
