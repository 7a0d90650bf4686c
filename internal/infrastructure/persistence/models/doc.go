// Package models contains the GORM persistence models. They mirror the
// database schema exactly (one model per table, column names fixed) and
// convert to and from the domain entities, keeping GORM concerns out of the
// domain layer.
package models
