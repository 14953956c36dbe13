// Package entity holds the persistence shape of every resource. Documents are
// stored as {_id, data} with the resource metadata embedded in data.
package entity

import "time"

// Entity is implemented by every stored document
type Entity interface {
	DocumentID() string
	SetDocumentID(id string)
}

// Note is implemented by every stored note document
type Note interface {
	Entity
}

// Document is the stored form of a resource
type Document[T any] struct {
	ID   string `json:"_id" bson:"_id"`
	Data T      `json:"data" bson:"data"`
}

func (d *Document[T]) DocumentID() string { return d.ID }

func (d *Document[T]) SetDocumentID(id string) { d.ID = id }

// BaseData is the metadata stored with every resource
type BaseData struct {
	Etag  string            `json:"etag,omitempty" bson:"etag,omitempty"`
	Kind  string            `json:"kind,omitempty" bson:"kind,omitempty"`
	Links map[string]string `json:"links,omitempty" bson:"links,omitempty"`
}

// LinksPath is the dotted path of the links map within a stored document
const LinksPath = "data.links"

type CompanyAccountData struct {
	BaseData    `bson:",inline"`
	PeriodEndOn time.Time `json:"period_end_on" bson:"period_end_on"`
}

type CompanyAccountEntity = Document[CompanyAccountData]

type SmallFullData struct {
	BaseData `bson:",inline"`
}

type SmallFullEntity = Document[SmallFullData]
