package entities

// Response shapes for the RxClass REST API.

// ClassSearchResult is the body of /rxclass/class/byName.json?className=...
type ClassSearchResult struct {
	RxclassMinConceptList struct {
		RxclassMinConcept []RxClassMinConcept `json:"rxclassMinConcept"`
	} `json:"rxclassMinConceptList"`
}

// RxClassMinConcept identifies one ATC class.
type RxClassMinConcept struct {
	ClassID   string `json:"classId"`
	ClassName string `json:"className"`
	ClassType string `json:"classType"`
}

// ClassMembersResult is the body of /rxclass/classMembers.json?classId=...
type ClassMembersResult struct {
	DrugMemberGroup struct {
		DrugMember []DrugMember `json:"drugMember"`
	} `json:"drugMemberGroup"`
}

// DrugMember is one drug belonging to a class.
type DrugMember struct {
	MinConcept MinConcept `json:"minConcept"`
}

// MinConcept is the minimal concept form returned by class membership lookups.
type MinConcept struct {
	Rxcui string `json:"rxcui"`
	Name  string `json:"name"`
	TTY   string `json:"tty"`
}
