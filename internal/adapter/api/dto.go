package api

type fileRefPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type taskItem struct {
	ID              uint64          `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	TaskType        string          `json:"task_type"`
	Status          string          `json:"status"`
	Priority        string          `json:"priority"`
	DueDate         *string         `json:"due_date,omitempty"`
	AssigneeID      uint64          `json:"assignee_id"`
	CustomerID      uint64          `json:"customer_id"`
	ContentUnitID   uint64          `json:"content_unit_id"`
	PostNumber      int             `json:"post_number"`
	DeliverableFile *fileRefPayload `json:"deliverable_file,omitempty"`
}

type postItem struct {
	ID                uint64           `json:"id"`
	CustomerID        uint64           `json:"customer_id"`
	PostNumber        int              `json:"post_number"`
	ScheduledDate     string           `json:"scheduled_date"`
	ScheduledTime     string           `json:"scheduled_time"`
	Platform          string           `json:"platform"`
	CopyIn            string           `json:"copy_in"`
	CopyOut           string           `json:"copy_out"`
	IdeaTema          string           `json:"idea_tema"`
	Campaign          string           `json:"campaign"`
	Pilar             string           `json:"pilar"`
	Referencia        string           `json:"referencia"`
	Arte              *fileRefPayload  `json:"arte,omitempty"`
	ArteFiles         []fileRefPayload `json:"arte_files,omitempty"`
	ElementosUtilizar []fileRefPayload `json:"elementos_utilizar,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updatePostRequest struct {
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Platform      string `json:"platform"`
	CopyIn        string `json:"copy_in"`
	CopyOut       string `json:"copy_out"`
	IdeaTema      string `json:"idea_tema"`
	Campaign      string `json:"campaign"`
	Pilar         string `json:"pilar"`
	Referencia    string `json:"referencia"`
}

type errorResponse struct {
	ErrDetails struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
