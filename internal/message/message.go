package message

// Request is an immutable HTTP request value. Trailers default to empty
// and are populated only when the wire reader delivers chunked trailers
// that survive cleansing (see the httpwire package).
type Request struct {
	Method   Method
	URI      URI
	Version  HttpVersion
	Headers  Headers
	Body     Body
	Trailers Headers
}

// NewRequest builds a Request with an empty body and no trailers.
func NewRequest(method Method, uri URI) Request {
	return Request{Method: method, URI: uri, Version: OnePtOne, Body: EmptyBody}
}

// WithBody returns a copy of r with Body replaced.
func (r Request) WithBody(b Body) Request {
	r.Body = b
	return r
}

// WithHeader returns a copy of r with name/value added to Headers.
func (r Request) WithHeader(name, value string) Request {
	r.Headers = r.Headers.Add(name, value)
	return r
}

// WithHeaders returns a copy of r with Headers replaced wholesale.
func (r Request) WithHeaders(h Headers) Request {
	r.Headers = h
	return r
}

// WithTrailers returns a copy of r with Trailers replaced wholesale.
func (r Request) WithTrailers(t Headers) Request {
	r.Trailers = t
	return r
}

// Response is an immutable HTTP response value.
type Response struct {
	Status   Status
	Version  HttpVersion
	Headers  Headers
	Body     Body
	Trailers Headers
}

// NewResponse builds a Response with an empty body and no trailers.
func NewResponse(status Status) Response {
	return Response{Status: status, Version: OnePtOne, Body: EmptyBody}
}

// WithBody returns a copy of resp with Body replaced.
func (resp Response) WithBody(b Body) Response {
	resp.Body = b
	return resp
}

// WithHeader returns a copy of resp with name/value added to Headers.
func (resp Response) WithHeader(name, value string) Response {
	resp.Headers = resp.Headers.Add(name, value)
	return resp
}

// WithHeaders returns a copy of resp with Headers replaced wholesale.
func (resp Response) WithHeaders(h Headers) Response {
	resp.Headers = h
	return resp
}

// WithTrailers returns a copy of resp with Trailers replaced wholesale.
func (resp Response) WithTrailers(t Headers) Response {
	resp.Trailers = t
	return resp
}

// Ok builds a 200 response with a buffered body.
func Ok(body []byte) Response {
	return NewResponse(StatusOK).WithBody(BufferedBody(body))
}

// BadRequest builds a 400 response with a buffered body, typically the
// framing error message.
func BadRequest(body []byte) Response {
	return NewResponse(StatusBadRequest).WithBody(BufferedBody(body))
}

// NotFound builds a 404 response with a buffered body.
func NotFound(body []byte) Response {
	return NewResponse(StatusNotFound).WithBody(BufferedBody(body))
}

// LengthRequired builds a 411 response with a buffered body.
func LengthRequired(body []byte) Response {
	return NewResponse(StatusLengthRequired).WithBody(BufferedBody(body))
}

// InternalServerError builds a 500 response with a buffered body.
func InternalServerError(body []byte) Response {
	return NewResponse(StatusInternalServerError).WithBody(BufferedBody(body))
}

// MovedPermanently builds a 301 response redirecting to location.
func MovedPermanently(location string) Response {
	return NewResponse(StatusMovedPermanently).WithHeader("Location", location).WithBody(EmptyBody)
}
