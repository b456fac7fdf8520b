// internal/model/user.go
package model

type User struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Age           int    `db:"age" json:"age"`
	Gender        string `db:"gender" json:"gender"`
	Location      string `db:"location" json:"location"`
	Occupation    string `db:"occupation" json:"occupation"`
	Language      string `db:"language" json:"language"`
	IgHandle      string `db:"ig_handle" json:"ig_handle,omitempty"`
	FbHandle      string `db:"fb_handle" json:"fb_handle,omitempty"`
	TwitterHandle string `db:"twitter_handle" json:"twitter_handle,omitempty"`
}
