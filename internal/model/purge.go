package model

import "encoding/json"

// PurgeRequest представляет тело запроса Fast Purge API.
type PurgeRequest struct {
	Objects []string `json:"objects"`
}

// Acknowledgement представляет ответ Fast Purge API. Это только подтверждение
// приёма запроса в очередь, а не факт завершения очистки.
type Acknowledgement struct {
	HTTPStatus       int    `json:"httpStatus"`
	Detail           string `json:"detail"`
	SupportID        string `json:"supportId"`
	PurgeID          string `json:"purgeId"`
	EstimatedSeconds int    `json:"estimatedSeconds"`
}

// PurgeResult хранит итог одного запуска и передаётся в отчёт.
type PurgeResult struct {
	Targets []string
	Body    string
	Ack     *Acknowledgement
}

// ParseAcknowledgement пытается разобрать тело ответа. Структура ответа не
// проверяется: если тело не разбирается, возвращается nil.
func ParseAcknowledgement(body string) *Acknowledgement {
	if body == "" {
		return nil
	}
	var ack Acknowledgement
	if err := json.Unmarshal([]byte(body), &ack); err != nil {
		return nil
	}
	return &ack
}
