// SPDX-License-Identifier: BSD-3-Clause

package puzzle

import (
	"strings"
	"testing"
)

// Make sure error messages never panic and are never empty.  The
// testing of individual cases we leave to the functional testing
// done of other files.
func TestErrorNoPanicNoEmpty(t *testing.T) {
	defer (func() {
		if e := recover(); e != nil {
			t.Fatalf("Panic during testing: %v", e)
		}
	})()
	for sc := int(UnknownScope); sc <= int(MaxScope); sc++ {
		for co := int(UnknownCondition); co <= int(MaxCondition); co++ {
			e := Error{
				Scope:     ErrorScope(sc),
				Condition: ErrorCondition(co),
			}
			m := e.Error()
			t.Log(m)
			if len(m) == 0 {
				t.Errorf("Empty error message for %+v", e)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	e := lineError("p.sud", 3, WrongLineLengthCondition, 8)
	if m := e.Error(); m != `puzzle file p.sud, line 3: must have exactly 9 cells (has 8)` {
		t.Errorf("Unexpected line error message: %q", m)
	}
	e = lineError("p.sud", 7, BadCharacterCondition, "x")
	if m := e.Error(); !strings.Contains(m, `"x"`) || !strings.Contains(m, "line 7") {
		t.Errorf("Unexpected bad character message: %q", m)
	}
	e = fileError("p.sud", WrongLineCountCondition, 4)
	if m := e.Error(); m != `puzzle file p.sud: must have exactly 9 puzzle lines (have 4)` {
		t.Errorf("Unexpected file error message: %q", m)
	}
}

func TestErrorCustomMessage(t *testing.T) {
	e := Error{Message: "canned"}
	if m := e.Error(); m != "canned" {
		t.Errorf("Custom message not used: %q", m)
	}
}
