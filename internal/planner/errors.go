package planner

import "errors"

var (
	// ErrCourseNotFound means the referenced course resolves in neither
	// catalog layer.
	ErrCourseNotFound = errors.New("course not found in catalog")

	// ErrSlotNotFound means the referenced semester is not part of the plan.
	ErrSlotNotFound = errors.New("semester not found in plan")

	// ErrCourseNotScheduled means a removal referenced a course that occupies
	// no slot.
	ErrCourseNotScheduled = errors.New("course is not scheduled")

	// ErrNoFreeSlot means every candidate successor semester already exists.
	ErrNoFreeSlot = errors.New("no free semester slot available")
)
