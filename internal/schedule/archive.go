package schedule

// CompletePatch builds the single update payload that archives an
// activity: the archive flag and completion stamp go on, the scheduling
// fields come off. Applying it as one Updates call keeps the transition
// atomic — an archived activity is never observable as still scheduled.
func CompletePatch(date Date, clock *string, notes string) map[string]interface{} {
	patch := map[string]interface{}{
		"is_archived":    true,
		"completed_date": date.String(),
		"completed_time": nil,
		"archive_notes":  notes,
		"scheduled_date": nil,
		"scheduled_time": nil,
	}
	if clock != nil && *clock != "" {
		patch["completed_time"] = *clock
	}
	return patch
}
