package logging

type Action = string

const (
	ListBooks   Action = "ListBooks"
	GetBook     Action = "GetBook"
	CreateBook  Action = "CreateBook"
	UpdateBook  Action = "UpdateBook"
	DeleteBook  Action = "DeleteBook"
	StoreStats  Action = "StoreStats"
	RecordVisit Action = "RecordVisit"
	ReadVisits  Action = "ReadVisits"
)
