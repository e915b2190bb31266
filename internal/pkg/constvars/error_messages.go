package constvars

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseDate            = "cannot parse date"
	ErrDevCannotParseInteger         = "cannot parse integer"
	ErrDevCannotParseFloat           = "cannot parse float"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotEncodeCSV            = "cannot encode CSV output"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "invalid URL parameter: %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthRefreshTokenUnknown   = "refresh token is unknown or expired"
	ErrDevAuthSessionNotFound       = "session not found in store"
	ErrDevInvalidCredentials        = "invalid credentials supplied"
	ErrDevFailedToHashPassword      = "failed to hash password"

	ErrDevPostgresFindData     = "postgres: failed to find data"
	ErrDevPostgresInsertData   = "postgres: failed to insert data"
	ErrDevPostgresUpdateData   = "postgres: failed to update data"
	ErrDevPostgresDeleteData   = "postgres: failed to delete data"
	ErrDevPostgresDataNotFound = "postgres: data not found"
	ErrDevPostgresConstraint   = "postgres: constraint violation"

	ErrDevRedisSet       = "redis: failed to set value"
	ErrDevRedisGetNoData = "redis: no data for key %s"
	ErrDevRedisDelete    = "redis: failed to delete key"

	ErrDevMinioCreateObject = "minio: failed to store object in bucket %s"

	ErrDevRabbitMQPublish = "rabbitmq: failed to publish message"
)
