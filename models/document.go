package models

import "go.mongodb.org/mongo-driver/bson/primitive"

func (u *User) GetID() primitive.ObjectID              { return u.ID }
func (u *User) SetID(id primitive.ObjectID)            { u.ID = id }
func (r *RescueRequest) GetID() primitive.ObjectID     { return r.ID }
func (r *RescueRequest) SetID(id primitive.ObjectID)   { r.ID = id }
func (o *RescueOperation) GetID() primitive.ObjectID   { return o.ID }
func (o *RescueOperation) SetID(id primitive.ObjectID) { o.ID = id }
func (t *Task) GetID() primitive.ObjectID              { return t.ID }
func (t *Task) SetID(id primitive.ObjectID)            { t.ID = id }
func (a *Alert) GetID() primitive.ObjectID             { return a.ID }
func (a *Alert) SetID(id primitive.ObjectID)           { a.ID = id }
func (q *CitizenQuery) GetID() primitive.ObjectID      { return q.ID }
func (q *CitizenQuery) SetID(id primitive.ObjectID)    { q.ID = id }
func (s *Shelter) GetID() primitive.ObjectID           { return s.ID }
func (s *Shelter) SetID(id primitive.ObjectID)         { s.ID = id }
func (r *Resource) GetID() primitive.ObjectID          { return r.ID }
func (r *Resource) SetID(id primitive.ObjectID)        { r.ID = id }
func (d *Disaster) GetID() primitive.ObjectID          { return d.ID }
func (d *Disaster) SetID(id primitive.ObjectID)        { d.ID = id }
func (a *AffectedArea) GetID() primitive.ObjectID      { return a.ID }
func (a *AffectedArea) SetID(id primitive.ObjectID)    { a.ID = id }
func (t *EmergencyTeam) GetID() primitive.ObjectID     { return t.ID }
func (t *EmergencyTeam) SetID(id primitive.ObjectID)   { t.ID = id }
func (r *Report) GetID() primitive.ObjectID            { return r.ID }
func (r *Report) SetID(id primitive.ObjectID)          { r.ID = id }
