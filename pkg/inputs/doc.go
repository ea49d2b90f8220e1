// Package inputs provides the form controls that bind to request data:
// text boxes, check boxes, radio buttons, text areas and selects.
package inputs
