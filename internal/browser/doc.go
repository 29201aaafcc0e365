// Package browser owns page navigation and rendering, the external
// collaborator side of the capture pipeline. It produces parsed goquery
// documents for the extraction core, either through a headless Chrome
// session for script-rendered calendars or a plain HTTP fetch for static
// pages. Retry/backoff lives here, never in the extraction core.
package browser
