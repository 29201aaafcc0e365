package capture

// RemoveMissingDates drops every event whose start date could not be
// resolved, logging one error per removed event. The remaining events are
// kept in their original order.
func RemoveMissingDates(results *CaptureResults, log *CaptureLog) {
	kept := results.Events[:0]
	for _, ev := range results.Events {
		if ev.StartDt == "" {
			log.Errorf("Removing event because no date could be found: %s, %s", ev.EventTitle, ev.FirstUri())
			continue
		}
		kept = append(kept, ev)
	}
	results.Events = kept
}
