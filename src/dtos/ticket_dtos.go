package dtos

// SubmitTicketDTO is the public submission form.
type SubmitTicketDTO struct {
	Cubiculo string `form:"cubiculo"`
	Problema string `form:"problema"`
}

// ResolveTicketDTO closes a ticket from the dashboard.
type ResolveTicketDTO struct {
	AtendidoPor string `form:"atendido_por"`
	Solucion    string `form:"solucion"`
}

// EditTicketDTO carries every editable field of a ticket. Hora accepts
// "YYYY-MM-DD HH:MM", "YYYY-MM-DD HH:MM:SS" or the datetime-local "T" form.
type EditTicketDTO struct {
	Cubiculo      string `form:"cubiculo"`
	Problema      string `form:"problema"`
	Status        string `form:"status"`
	AtendidoPor   string `form:"atendido_por"`
	Solucion      string `form:"solucion"`
	Hora          string `form:"hora"`
	Observaciones string `form:"observaciones"`
}

// TicketFilterDTO selects tickets by status and technician ("todos" disables a filter).
type TicketFilterDTO struct {
	Status string `form:"status"`
	Tech   string `form:"tech"`
}

// TicketNewsDTO is one entry of the "new since" list returned to pollers.
type TicketNewsDTO struct {
	ID       int     `json:"id"`
	Cubiculo string  `json:"cubiculo"`
	Problema string  `json:"problema"`
	Hora     *string `json:"hora"`
}

// AdminConfirmationDTO authorizes destructive admin actions.
type AdminConfirmationDTO struct {
	Password string `form:"password"`
	Confirm  string `form:"confirm"`
}

// DeleteSelectedDTO lists the ids to delete as "1,2,3".
type DeleteSelectedDTO struct {
	IDs string `form:"ids"`
}

// ChangePasswordDTO is the admin settings form.
type ChangePasswordDTO struct {
	Current string `form:"current"`
	New     string `form:"new"`
	Confirm string `form:"confirm"`
}
