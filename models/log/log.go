package log

import (
	"time"
)

// Log is one audited webhook call together with the carrier round trip it caused.
type Log struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TraceID         string    `gorm:"type:varchar(36);index" json:"trace_id"`
	Operation       string    `gorm:"type:varchar(16)" json:"operation"`
	Method          string    `gorm:"type:varchar(10);not null" json:"method"`
	URL             string    `gorm:"type:text;not null" json:"url"`
	RequestBody     string    `gorm:"type:text" json:"request_body"`
	ResponseBody    string    `gorm:"type:text" json:"response_body"`
	CarrierRequest  string    `gorm:"type:text" json:"carrier_request"`
	CarrierResponse string    `gorm:"type:text" json:"carrier_response"`
	StatusCode      int       `gorm:"type:int" json:"status_code"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}
