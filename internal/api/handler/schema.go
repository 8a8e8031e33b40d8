package handler

// errorResponse is the standard error envelope returned on 4xx/5xx responses
// that are not full error pages.
type errorResponse struct {
	Error string `json:"error"`
}

// validationResponse lists every failing field of a rejected form.
type validationResponse struct {
	Errors ValidationErrors `json:"errors"`
}

// --- Request types ---

type signupRequest struct {
	Username  string `form:"username"  validate:"required,min=3,max=25"`
	Email     string `form:"email"     validate:"required,email"`
	Phone     string `form:"phone"     validate:"required,numeric,len=10"`
	Age       int    `form:"age"       validate:"required,gte=16,lte=100"`
	Street    string `form:"street"`
	Ward      string `form:"ward"`
	City      string `form:"city"`
	State     string `form:"state"`
	Pin       string `form:"pin"       validate:"required,numeric,len=6"`
	Password  string `form:"password"  validate:"required,min=5,max=15"`
	CPassword string `form:"cpassword" validate:"required,min=5,max=15"`
}

type loginRequest struct {
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=5,max=15"`
}

type bookTicketRequest struct {
	Destination string `form:"destination" validate:"required,min=2,max=60"`
	TravelDate  string `form:"travel_date" validate:"required,datetime=2006-01-02"`
	Seats       int    `form:"seats"       validate:"required,gte=1,lte=10"`
}
