package models

type SmsNotificationParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SmsNotificationRequest is the Pub/Sub payload consumed by the downstream
// SMS gateway simulator.
type SmsNotificationRequest struct {
	Msisdn          string                     `json:"msisdn"`
	SourceAddress   string                     `json:"source_address"`
	SmsDbEventName  string                     `json:"sms_db_event_name"`
	MessageText     string                     `json:"message_text"`
	NotifParameters []SmsNotificationParameter `json:"notif_parameters"`
}
