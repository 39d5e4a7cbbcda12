// Package parcel models a delivery order: an immutable identity/destination
// /reward/deadline record plus the one-shot delivery transition the
// dispatcher applies when a courier arrives.
package parcel
