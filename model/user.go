package model

/*

User is a member of the social graph.

Id: primary key
FirstName, LastName, Email: account fields, free form
SubscriberIds: ids of users subscribed to this user. Serialized as
	"subscribedToUserIds" for compatibility with the historical wire format,
	which named the field after the subscriber side of the edge. The array on
	user X always holds X's followers; "who does X follow" is computed by
	scanning other users' arrays for X (see service.Following).

*/

type User struct {
	Id            string   `json:"id"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	SubscriberIds []string `json:"subscribedToUserIds"`
}
