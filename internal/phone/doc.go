// Package phone interprets partially typed phone numbers.
//
// Every call is a pure function of the full current input: the parser keeps
// no state between keystrokes, so an edit anywhere in the text is handled by
// simply parsing the new text again.
//
// # Components
//
//   - Registry: country <-> calling code tables, built once per Interpreter
//   - masks: display masks derived from each country's example number
//   - ParseNumber: best current interpretation of raw input
//   - Validate: verdict for a complete number against an expected country
//   - SymbolBuffer: recently deleted literal characters of one input session
//
// Phone metadata is not bundled here. It is consumed through Provider, see
// package telinput/internal/metadata for the libphonenumber-backed one.
package phone
