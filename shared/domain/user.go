package domain

type User struct {
	Id       UserId
	Username Username
	PassHash string
	Fullname string
}

// to iterate thru layers: handler -> service -> storage
type UserCreationData struct {
	Username Username
	PassHash string
	Fullname string
}

type AddedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

type Credentials struct {
	Username Username
	Password Password
}
