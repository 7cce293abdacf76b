package logger

// Standard field key constants for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldUserID     = "user_id"
	FieldSubject    = "subject"
	FieldPermission = "permission"
	FieldObject     = "object"
	FieldAllowed    = "allowed"
	FieldReason     = "reason"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("checked", logger.Fields("object", "account:acc1", "allowed", true))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}
