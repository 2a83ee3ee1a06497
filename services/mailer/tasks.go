package mailer

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeSendConfirmation is the asynq task type for deferred confirmation sends.
const TypeSendConfirmation = "email:confirmation"

// MailQueue is the asynq queue scheduled confirmation emails run on.
const MailQueue = "default"

// ConfirmationTaskPayload is the rendered email carried by a scheduled task.
type ConfirmationTaskPayload struct {
	To      string `json:"to"`
	ToName  string `json:"toName"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewConfirmationTask builds a scheduled confirmation send with a fixed task
// id so the pending email can be rescheduled or cancelled later.
func NewConfirmationTask(payload ConfirmationTaskPayload, id string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendConfirmation, b)
	opts := []asynq.Option{
		asynq.TaskID(id),
		asynq.ProcessAt(fireAt),
		asynq.Queue(MailQueue),
	}
	return task, opts, nil
}
