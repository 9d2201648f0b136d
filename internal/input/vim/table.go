package vim

import "sort"

// ArgKind describes the argument an entry consumes after its keys.
type ArgKind uint8

const (
	// ArgNone means the entry is complete once its keys are typed.
	ArgNone ArgKind = iota
	// ArgChar takes one literal character (r, f, t).
	ArgChar
	// ArgMark takes a mark name (m, ', `).
	ArgMark
	// ArgRegister takes a macro register name (q, @).
	ArgRegister
)

// Entry is one row of a canonical key table.
type Entry struct {
	// Keys is the key sequence in table notation ("dd", "<C-r>", "ci(").
	Keys string

	// Action is the action name emitted when the entry resolves.
	Action string

	// Motion marks entries that may follow a pending operator.
	Motion bool

	// Arg is the argument consumed after Keys.
	Arg ArgKind

	// Operator is the operator folded into the entry ("d" for "diw").
	Operator string

	// Object is the text object trigger for operator+object entries.
	Object rune

	// Inner selects the inner variant of Object.
	Inner bool
}

// ObjectNames maps text object triggers to the names used in generated
// action names such as "c_inner_double_quote".
var ObjectNames = map[rune]string{
	'"':  "double_quote",
	'\'': "single_quote",
	'`':  "backtick",
	'(':  "parentheses",
	')':  "parentheses",
	'[':  "brackets",
	']':  "brackets",
	'{':  "braces",
	'}':  "braces",
	'<':  "angle_brackets",
	'>':  "angle_brackets",
	't':  "tag",
	'w':  "word",
	'W':  "WORD",
	's':  "sentence",
	'p':  "paragraph",
	'b':  "block",
	'B':  "block",
	'i':  "indent",
	'l':  "link",
	'k':  "code_block",
}

// operatorMotionNames maps the motions of the generated
// operator+motion grammar to their action-name suffix.
var operatorMotionNames = map[rune]string{
	'w': "word",
	'W': "WORD",
	'e': "word_end",
	'E': "WORD_end",
	'b': "word_back",
	'B': "WORD_back",
	'$': "line_end",
	'0': "line_start",
	'^': "first_non_whitespace",
}

// objectOperators are the operators that combine with text objects and
// the generated motions.
const objectOperators = "cdy"

var normalSingle = []Entry{
	{Keys: "i", Action: "enter_insert_mode"},
	{Keys: "I", Action: "insert_line_start"},
	{Keys: "a", Action: "insert_after"},
	{Keys: "A", Action: "insert_line_end"},
	{Keys: "o", Action: "insert_line_below"},
	{Keys: "O", Action: "insert_line_above"},
	{Keys: "v", Action: "enter_visual_mode"},
	{Keys: "V", Action: "enter_visual_line_mode"},
	{Keys: "s", Action: "substitute_char"},
	{Keys: "S", Action: "substitute_line"},
	{Keys: "x", Action: "delete_char"},
	{Keys: "X", Action: "delete_char_before"},
	{Keys: "r", Action: "replace_char", Arg: ArgChar},
	{Keys: "R", Action: "enter_replace_mode"},
	{Keys: "p", Action: "paste_after"},
	{Keys: "P", Action: "paste_before"},
	{Keys: "J", Action: "join_lines"},
	{Keys: "~", Action: "toggle_case_and_move"},
	{Keys: "u", Action: "undo"},
	{Keys: "U", Action: "undo_line"},
	{Keys: ".", Action: "repeat_last_edit"},
	{Keys: "@", Action: "execute_macro", Arg: ArgRegister},
	{Keys: "q", Action: "record_macro", Arg: ArgRegister},
	{Keys: "m", Action: "set_mark", Arg: ArgMark},
	{Keys: "'", Action: "goto_mark_line", Arg: ArgMark, Motion: true},
	{Keys: "`", Action: "goto_mark_exact", Arg: ArgMark, Motion: true},
	{Keys: ":", Action: "enter_command_mode"},
	{Keys: "/", Action: "search_forward"},
	{Keys: "?", Action: "search_backward"},
	{Keys: "n", Action: "search_next", Motion: true},
	{Keys: "N", Action: "search_prev", Motion: true},
	{Keys: "*", Action: "search_word_forward", Motion: true},
	{Keys: "#", Action: "search_word_backward", Motion: true},
	{Keys: "%", Action: "match_bracket", Motion: true},
}

var normalMotions = []Entry{
	{Keys: "h", Action: "move_left", Motion: true},
	{Keys: "j", Action: "move_down", Motion: true},
	{Keys: "k", Action: "move_up", Motion: true},
	{Keys: "l", Action: "move_right", Motion: true},
	{Keys: "<Left>", Action: "move_left", Motion: true},
	{Keys: "<Down>", Action: "move_down", Motion: true},
	{Keys: "<Up>", Action: "move_up", Motion: true},
	{Keys: "<Right>", Action: "move_right", Motion: true},
	{Keys: "w", Action: "word_forward", Motion: true},
	{Keys: "W", Action: "WORD_forward", Motion: true},
	{Keys: "b", Action: "word_backward", Motion: true},
	{Keys: "B", Action: "WORD_backward", Motion: true},
	{Keys: "e", Action: "word_end", Motion: true},
	{Keys: "E", Action: "WORD_end", Motion: true},
	{Keys: "0", Action: "line_start", Motion: true},
	{Keys: "<Home>", Action: "line_start", Motion: true},
	{Keys: "^", Action: "first_non_whitespace", Motion: true},
	{Keys: "$", Action: "line_end", Motion: true},
	{Keys: "<End>", Action: "line_end", Motion: true},
	{Keys: "{", Action: "paragraph_backward", Motion: true},
	{Keys: "}", Action: "paragraph_forward", Motion: true},
	{Keys: "(", Action: "sentence_backward", Motion: true},
	{Keys: ")", Action: "sentence_forward", Motion: true},
	{Keys: "H", Action: "screen_top", Motion: true},
	{Keys: "M", Action: "screen_middle", Motion: true},
	{Keys: "L", Action: "screen_bottom", Motion: true},
	{Keys: "f", Action: "find_char_forward", Arg: ArgChar, Motion: true},
	{Keys: "F", Action: "find_char_backward", Arg: ArgChar, Motion: true},
	{Keys: "t", Action: "till_char_forward", Arg: ArgChar, Motion: true},
	{Keys: "T", Action: "till_char_backward", Arg: ArgChar, Motion: true},
	{Keys: ";", Action: "repeat_find", Motion: true},
	{Keys: ",", Action: "repeat_find_reverse", Motion: true},
	{Keys: "<PageDown>", Action: "page_down"},
	{Keys: "<PageUp>", Action: "page_up"},
	{Keys: "<Del>", Action: "delete_char"},
}

var normalMulti = []Entry{
	{Keys: "zz", Action: "center_view"},
	{Keys: "zt", Action: "cursor_top"},
	{Keys: "zb", Action: "cursor_bottom"},
	{Keys: "z.", Action: "center_cursor_first_char"},
	{Keys: "z-", Action: "cursor_bottom_first_char"},
	{Keys: "zj", Action: "next_fold", Motion: true},
	{Keys: "zk", Action: "prev_fold", Motion: true},
	{Keys: "zo", Action: "open_fold"},
	{Keys: "zc", Action: "close_fold"},
	{Keys: "za", Action: "toggle_fold"},
	{Keys: "zr", Action: "open_all_folds"},
	{Keys: "zm", Action: "close_all_folds"},

	{Keys: "dd", Action: "delete_line", Operator: "d"},
	{Keys: "cc", Action: "change_line", Operator: "c"},
	{Keys: "yy", Action: "yank_line", Operator: "y"},
	{Keys: "Y", Action: "yank_to_end"},
	{Keys: "D", Action: "delete_to_end"},
	{Keys: "C", Action: "change_to_end"},
	{Keys: "G", Action: "goto_file_end", Motion: true},
	{Keys: ">>", Action: "indent_line", Operator: ">"},
	{Keys: "<<", Action: "unindent_line", Operator: "<"},
	{Keys: "==", Action: "auto_indent_line", Operator: "="},

	{Keys: "gd", Action: "goto_definition"},
	{Keys: "gD", Action: "goto_definition_global"},
	{Keys: "gf", Action: "goto_file"},
	{Keys: "ga", Action: "show_ascii"},
	{Keys: "g8", Action: "show_utf8"},
	{Keys: "gg", Action: "goto_first_line", Motion: true},
	{Keys: "gi", Action: "goto_last_insert"},
	{Keys: "gI", Action: "insert_line_start"},
	{Keys: "gh", Action: "select_mode"},
	{Keys: "gn", Action: "select_next_match"},
	{Keys: "gN", Action: "select_prev_match"},
	{Keys: "ge", Action: "word_end_backward", Motion: true},
	{Keys: "gE", Action: "WORD_end_backward", Motion: true},
	{Keys: "gu", Action: "make_lowercase_motion"},
	{Keys: "gU", Action: "make_uppercase_motion"},
	{Keys: "g~", Action: "toggle_case_motion"},
	{Keys: "gq", Action: "format_motion"},
	{Keys: "gw", Action: "format_motion_keep_cursor"},
	{Keys: "gx", Action: "open_url"},

	{Keys: "[[", Action: "prev_section", Motion: true},
	{Keys: "]]", Action: "next_section", Motion: true},
	{Keys: "[]", Action: "prev_section_end", Motion: true},
	{Keys: "][", Action: "next_section_end", Motion: true},
	{Keys: "[(", Action: "prev_unmatched_open_brace", Motion: true},
	{Keys: "[{", Action: "prev_unmatched_open_brace", Motion: true},
	{Keys: "]}", Action: "next_unmatched_close_brace", Motion: true},
	{Keys: "])", Action: "next_close_paren", Motion: true},
	{Keys: "[m", Action: "prev_method_start", Motion: true},
	{Keys: "]m", Action: "next_method_start", Motion: true},
	{Keys: "[M", Action: "prev_method_end", Motion: true},
	{Keys: "]M", Action: "next_method_end", Motion: true},
	{Keys: "[*", Action: "prev_comment", Motion: true},
	{Keys: "]*", Action: "next_comment", Motion: true},
}

// objectKeys returns the object triggers in a stable order.
func objectKeys() []rune {
	keys := make([]rune, 0, len(ObjectNames))
	for r := range ObjectNames {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// generatedEntries expands the operator+object and operator+motion grammar.
func generatedEntries() []Entry {
	var entries []Entry
	for _, op := range objectOperators {
		for m, name := range operatorMotionNames {
			entries = append(entries, Entry{
				Keys:     string(op) + escapeKey(m),
				Action:   string(op) + "_motion_" + name,
				Operator: string(op),
			})
		}
		for _, obj := range objectKeys() {
			for _, scope := range []struct {
				key   rune
				name  string
				inner bool
			}{{'i', "inner", true}, {'a', "around", false}} {
				entries = append(entries, Entry{
					Keys:     string(op) + string(scope.key) + escapeKey(obj),
					Action:   string(op) + "_" + scope.name + "_" + ObjectNames[obj],
					Operator: string(op),
					Object:   obj,
					Inner:    scope.inner,
				})
			}
		}
	}
	return entries
}

// escapeKey writes r in table notation.
func escapeKey(r rune) string {
	if r == '<' {
		return "<lt>"
	}
	return string(r)
}

// NormalEntries returns the canonical normal-mode table. The two-key
// table follows the one-key table, so a two-key spelling wins when both
// define the same keys.
func NormalEntries() []Entry {
	entries := make([]Entry, 0, 512)
	entries = append(entries, normalSingle...)
	entries = append(entries, normalMotions...)
	entries = append(entries, generatedEntries()...)
	entries = append(entries, normalMulti...)
	return entries
}

var normalCtrl = map[rune]string{
	'f': "page_down",
	'b': "page_up",
	'd': "half_page_down",
	'u': "half_page_up",
	'e': "scroll_line_down",
	'y': "scroll_line_up",
	'r': "redo",
	'a': "increment_number",
	'x': "decrement_number",
	'v': "enter_visual_block_mode",
	'o': "insert_line_above_and_enter",
	'n': "search_next_word",
}

// NormalCtrl returns the action for Ctrl plus r in normal mode.
func NormalCtrl(r rune) (string, bool) {
	name, ok := normalCtrl[r]
	return name, ok
}

var insertCtrl = map[rune]string{
	'o': "single_normal_command",
	'w': "delete_word_before",
	'u': "delete_to_line_start",
	't': "indent_line",
	'd': "unindent_line",
	'n': "completion_next",
	'p': "completion_prev",
}

// InsertCtrl returns the action for Ctrl plus r in insert mode.
func InsertCtrl(r rune) (string, bool) {
	name, ok := insertCtrl[r]
	return name, ok
}

var visualFixed = []Entry{
	{Keys: "h", Action: "extend_left"},
	{Keys: "j", Action: "extend_down"},
	{Keys: "k", Action: "extend_up"},
	{Keys: "l", Action: "extend_right"},
	{Keys: "<Left>", Action: "extend_left"},
	{Keys: "<Down>", Action: "extend_down"},
	{Keys: "<Up>", Action: "extend_up"},
	{Keys: "<Right>", Action: "extend_right"},
	{Keys: "w", Action: "extend_word_forward"},
	{Keys: "b", Action: "extend_word_backward"},
	{Keys: "d", Action: "delete_selection"},
	{Keys: "x", Action: "delete_selection"},
	{Keys: "y", Action: "yank_selection"},
	{Keys: "c", Action: "change_selection"},
	{Keys: "r", Action: "replace_selection", Arg: ArgChar},
	{Keys: "o", Action: "move_to_other_end"},
	{Keys: "O", Action: "move_to_other_end_block"},
	{Keys: "gv", Action: "reselect_last"},
	{Keys: "J", Action: "join_selection_lines"},
	{Keys: "u", Action: "selection_to_lowercase"},
	{Keys: "U", Action: "selection_to_uppercase"},
	{Keys: "~", Action: "selection_toggle_case"},
	{Keys: ">", Action: "indent_selection"},
	{Keys: "<lt>", Action: "unindent_selection"},
	{Keys: "=", Action: "auto_indent_selection"},
	{Keys: "v", Action: "enter_visual_mode"},
	{Keys: "V", Action: "enter_visual_line_mode"},
	{Keys: "<C-v>", Action: "enter_visual_block_mode"},
	{Keys: ":", Action: "enter_command_mode"},

	// Multi-selection commands.
	{Keys: "C", Action: "add_cursor_below"},
	{Keys: "<A-C>", Action: "add_cursor_above"},
	{Keys: ",", Action: "keep_primary_selection"},
	{Keys: "%", Action: "select_all"},
	{Keys: "<A-s>", Action: "split_selection_lines"},
	{Keys: "<A-;>", Action: "flip_selections"},
	{Keys: "<A-->", Action: "merge_selections"},
}

// VisualEntries returns the canonical visual-mode table, including
// i{object} and a{object} selection entries.
func VisualEntries() []Entry {
	entries := make([]Entry, 0, len(visualFixed)+2*len(ObjectNames))
	entries = append(entries, visualFixed...)
	for _, obj := range objectKeys() {
		entries = append(entries,
			Entry{Keys: "i" + escapeKey(obj), Action: "select_inner_" + ObjectNames[obj], Object: obj, Inner: true},
			Entry{Keys: "a" + escapeKey(obj), Action: "select_around_" + ObjectNames[obj], Object: obj},
		)
	}
	return entries
}
