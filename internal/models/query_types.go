package models

type QueryType string

const (
	QueryTypeEmployerList      QueryType = "employer_list"
	QueryTypeEmployerDetails   QueryType = "employer_details"
	QueryTypeUpcomingDeadlines QueryType = "upcoming_deadlines"
)
