package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Request construction codes
	BadRequest Code = 100001

	// Discord response codes
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	Internal         Code = 100007
	Unavailable      Code = 100008
	TooManyRequests  Code = 100010
)

// FromStatus maps a non-2xx HTTP status returned by Discord to a code.
func FromStatus(status int) Code {
	switch {
	case status == 400:
		return BadRequest
	case status == 401:
		return Unauthenticated
	case status == 403:
		return PermissionDenied
	case status == 404:
		return NotFound
	case status == 429:
		return TooManyRequests
	case status >= 500:
		return Unavailable
	}

	return BadResponse
}
