package model

/*

Profile carries the public-facing details of a user, at most one per user.

Id: primary key
Avatar: avatar image url
Sex: free form
Birthday: unix day timestamp
Country, Street, City: address fields
MemberTypeId: membership tier, "belongs-to" relation, never owned
UserId: owning user, unique across profiles

*/

type Profile struct {
	Id           string `json:"id"`
	Avatar       string `json:"avatar"`
	Sex          string `json:"sex"`
	Birthday     int32  `json:"birthday"`
	Country      string `json:"country"`
	Street       string `json:"street"`
	City         string `json:"city"`
	MemberTypeId string `json:"memberTypeId"`
	UserId       string `json:"userId"`
}
