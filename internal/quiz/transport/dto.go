package transport

// SubmitRequest is the completed assessment posted by the public quiz.
type SubmitRequest struct {
	PainZone      string `json:"painZone" validate:"required,oneof=schiena collo spalla ginocchio caviglia altro"`
	PainZoneOther string `json:"painZoneOther" validate:"omitempty,max=200"`
	Duration      string `json:"duration" validate:"required,oneof=meno_1_settimana 1_4_settimane 1_3_mesi piu_3_mesi"`
	Intensity     int    `json:"intensity" validate:"required,min=1,max=10"`
	Cause         string `json:"cause" validate:"required,oneof=trauma postura sport non_so"`
	Name          string `json:"name" validate:"required,max=200"`
	Age           *int   `json:"age,omitempty"`
	Phone         string `json:"phone" validate:"required,max=30"`
	Email         string `json:"email" validate:"required,max=254"`
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
}
