package dto

type BuildCompletedInput struct {
	Job         string            `json:"job"          binding:"required"`
	BuildNumber int               `json:"build_number" binding:"min=0"`
	Result      string            `json:"result"       binding:"required"`
	URL         string            `json:"url"`
	Workspace   string            `json:"workspace"`
	Env         map[string]string `json:"env"`
}

type NotifyOutput struct {
	DeliveryID string   `json:"delivery_id,omitempty"`
	Attempted  bool     `json:"attempted"`
	State      string   `json:"state"`
	Post       bool     `json:"post"`
	Notify     bool     `json:"notify"`
	Delivered  bool     `json:"delivered"`
	Room       string   `json:"room,omitempty"`
	Color      string   `json:"color,omitempty"`
	Source     string   `json:"source,omitempty"`
	LogLines   []string `json:"log"`
}

func (o *NotifyOutput) Log(line string) {
	o.LogLines = append(o.LogLines, line)
}
