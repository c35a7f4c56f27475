package status

// Code is an HTTP response status code.
type Code uint16

const (
	OK        Code = 200
	Created   Code = 201
	NoContent Code = 204

	MovedPermanently Code = 301
	Found            Code = 302
	NotModified      Code = 304

	BadRequest            Code = 400
	Unauthorized          Code = 401
	Forbidden             Code = 403
	NotFound              Code = 404
	MethodNotAllowed      Code = 405
	RequestTimeout        Code = 408
	LengthRequired        Code = 411
	RequestEntityTooLarge Code = 413
	RequestURITooLong     Code = 414
	Teapot                Code = 418

	InternalServerError Code = 500
	NotImplemented      Code = 501
	BadGateway          Code = 502
	ServiceUnavailable  Code = 503
)

// Text returns the conventional reason phrase for the code, or "Unknown
// Status Code" for codes it doesn't know about.
func Text(code Code) string {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case NoContent:
		return "No Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case NotModified:
		return "Not Modified"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case RequestTimeout:
		return "Request Timeout"
	case LengthRequired:
		return "Length Required"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request URI Too Long"
	case Teapot:
		return "I'm a Teapot"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Unknown Status Code"
	}
}
