// Package action defines the value the modal engine hands to its host.
//
// Every key event the engine resolves produces at most one Action. An
// Action carries a symbolic name (for example "delete_line" or
// "insert_char"), a repeat count, the pending operator if one applied, an
// optional register and a typed Payload holding the fields specific to
// that family of actions.
//
// Hosts switch exhaustively on the payload type:
//
//	switch p := act.Payload.(type) {
//	case action.Char:
//	    buf.Insert(p.Char)
//	case action.LineRange:
//	    buf.DeleteLines(p.First, p.Last)
//	case action.Problem:
//	    status.Show(p.Message)
//	}
//
// Actions serialize to a stable JSON shape:
//
//	{"action":"delete_line","count":3,"operator":null}
package action
