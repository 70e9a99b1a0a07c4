package validate

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestCheckOwnerKeys(t *testing.T) {
	for _, raw := range []string{
		`{"userId":"u1","rating":3}`,
		`{"user_id":"u1"}`,
		`{"userId":null}`,
	} {
		if err := CheckOwnerKeys(decode(t, raw)); err == nil || err.Code != CodeUserIDNotAllowed {
			t.Errorf("body %s: expected USER_ID_NOT_ALLOWED, got %v", raw, err)
		}
	}

	if err := CheckOwnerKeys(decode(t, `{"authorId":"u1"}`)); err != nil {
		t.Errorf("authorId without alias should pass, got %v", err)
	}
	if err := CheckOwnerKeys(decode(t, `{"authorId":"u1"}`), "authorId"); err == nil {
		t.Error("authorId with alias should fail")
	}
	// nested keys are fine, only top-level matching applies
	if err := CheckOwnerKeys(decode(t, `{"meta":{"userId":"u1"}}`)); err != nil {
		t.Errorf("nested userId should pass, got %v", err)
	}
}

func TestRatingValidation(t *testing.T) {
	tests := []struct {
		raw      string
		wantCode string
	}{
		{`{"userId":"x","resourceId":1,"rating":3}`, CodeUserIDNotAllowed},
		{`{"authorId":"x","resourceId":1,"rating":3}`, CodeUserIDNotAllowed},
		{`{"rating":3}`, CodeMissingResourceID},
		{`{"resourceId":"abc","rating":3}`, CodeMissingResourceID},
		{`{"resourceId":1}`, CodeMissingRating},
		{`{"resourceId":1,"rating":null}`, CodeMissingRating},
		{`{"resourceId":1,"rating":0}`, CodeInvalidRating},
		{`{"resourceId":1,"rating":6}`, CodeInvalidRating},
		{`{"resourceId":1,"rating":"abc"}`, CodeInvalidRating},
		{`{"resourceId":1,"rating":true}`, CodeInvalidRating},
	}
	for _, tt := range tests {
		_, err := Rating(decode(t, tt.raw))
		if err == nil || err.Code != tt.wantCode {
			t.Errorf("Rating(%s) = %v, want code %s", tt.raw, err, tt.wantCode)
		}
	}

	input, err := Rating(decode(t, `{"resourceId":"2","rating":"4","comment":"  nice  "}`))
	if err != nil {
		t.Fatalf("coerced rating should pass: %v", err)
	}
	if input.ResourceID != 2 || input.Rating != 4 {
		t.Errorf("coercion gave %+v", input)
	}
	if input.Comment == nil || *input.Comment != "nice" {
		t.Errorf("comment not trimmed: %+v", input.Comment)
	}

	// 4.9 truncates to 4, like a parseInt
	input, err = Rating(decode(t, `{"resourceId":1,"rating":4.9}`))
	if err != nil || input.Rating != 4 {
		t.Errorf("float rating should truncate to 4, got %+v err %v", input, err)
	}
}

func TestProgressValidation(t *testing.T) {
	tests := []struct {
		raw      string
		wantCode string
	}{
		{`{"user_id":"x","resourceId":1,"completion":10}`, CodeUserIDNotAllowed},
		{`{"completion":10}`, CodeMissingResourceID},
		{`{"resourceId":"1","completion":10}`, CodeMissingResourceID},
		{`{"resourceId":1,"completion":"50"}`, CodeInvalidCompletion},
		{`{"resourceId":1,"completion":-1}`, CodeInvalidCompletion},
		{`{"resourceId":1,"completion":101}`, CodeInvalidCompletion},
	}
	for _, tt := range tests {
		_, err := Progress(decode(t, tt.raw))
		if err == nil || err.Code != tt.wantCode {
			t.Errorf("Progress(%s) = %v, want code %s", tt.raw, err, tt.wantCode)
		}
	}

	input, err := Progress(decode(t, `{"resourceId":3,"completion":100}`))
	if err != nil || input.ResourceID != 3 || input.Completion != 100 {
		t.Errorf("valid progress rejected: %+v err %v", input, err)
	}
}

func TestAssessmentValidation(t *testing.T) {
	tests := []struct {
		raw      string
		wantCode string
	}{
		{`{"userId":"x","answers":{},"result":{}}`, CodeUserIDNotAllowed},
		{`{"result":{}}`, CodeMissingAnswers},
		{`{"answers":"text","result":{}}`, CodeMissingAnswers},
		{`{"answers":{}}`, CodeMissingResult},
		{`{"answers":{},"result":[]}`, CodeMissingResult},
		{`{"answers":{},"result":{"strengths":[],"weaknesses":"x","scores":{}}}`, CodeInvalidResultStructure},
		{`{"answers":{},"result":{"strengths":[],"weaknesses":[]}}`, CodeInvalidResultStructure},
	}
	for _, tt := range tests {
		_, err := Assessment(decode(t, tt.raw))
		if err == nil || err.Code != tt.wantCode {
			t.Errorf("Assessment(%s) = %v, want code %s", tt.raw, err, tt.wantCode)
		}
	}

	input, err := Assessment(decode(t, `{"answers":{"q1":"a"},"result":{"strengths":["tech"],"weaknesses":["analysis"],"scores":{"tech":80}}}`))
	if err != nil {
		t.Fatalf("valid assessment rejected: %v", err)
	}
	scores := input.Scores()
	if scores["tech"] != float64(80) {
		t.Errorf("scores not extracted: %+v", scores)
	}
}

func TestRecommendationValidation(t *testing.T) {
	tests := []struct {
		raw      string
		wantCode string
	}{
		{`{"userID":"x","careers":[],"resources":[]}`, CodeUserIDNotAllowed},
		{`{"careers":{},"resources":[]}`, CodeInvalidCareers},
		{`{"careers":[{"id":"c1","title":"T","summary":"S"}],"resources":[]}`, CodeInvalidCareerFormat},
		{`{"careers":[{"id":"c1","title":"T","summary":"S","match":80}],"resources":[]}`, CodeInvalidCareerFormat},
		{`{"careers":[],"resources":"nope"}`, CodeInvalidResources},
		{`{"careers":[],"resources":[{"id":"r1","title":"T","url":"u"}]}`, CodeInvalidResourceFormat},
	}
	for _, tt := range tests {
		_, err := Recommendation(decode(t, tt.raw))
		if err == nil || err.Code != tt.wantCode {
			t.Errorf("Recommendation(%s) = %v, want code %s", tt.raw, err, tt.wantCode)
		}
	}

	input, err := Recommendation(decode(t, `{"careers":[{"id":"c1","title":"Engineer","summary":"Builds","match":"86%"}],"resources":[{"id":"r1","title":"Course","url":"https://x","type":"course"}]}`))
	if err != nil {
		t.Fatalf("valid recommendation rejected: %v", err)
	}
	if len(input.Careers) != 1 || input.Careers[0].Match != "86%" {
		t.Errorf("careers not parsed: %+v", input.Careers)
	}
}

func TestTaskValidation(t *testing.T) {
	if _, err := Tasks([]interface{}{}); err == nil || err.Code != CodeNoTasks {
		t.Error("empty array should be NO_TASKS")
	}
	if _, err := Tasks("bogus"); err == nil || err.Code != CodeNoTasks {
		t.Error("non object/array body should be NO_TASKS")
	}

	_, err := NewTask(decode(t, `{"label":"  "}`))
	if err == nil || err.Code != CodeMissingLabel {
		t.Errorf("blank label: %v", err)
	}
	_, err = NewTask(decode(t, `{"label":"x","dueDate":"2026-2-3"}`))
	if err == nil || err.Code != CodeInvalidDueDate {
		t.Errorf("loose date should fail: %v", err)
	}
	_, err = NewTask(decode(t, `{"label":"x","done":"yes"}`))
	if err == nil || err.Code != CodeInvalidDone {
		t.Errorf("string done should fail: %v", err)
	}
	_, err = NewTask(decode(t, `{"userId":"u","label":"x"}`))
	if err == nil || err.Code != CodeUserIDNotAllowed {
		t.Errorf("owner key on task create: %v", err)
	}

	inputs, err := Tasks([]interface{}{
		map[string]interface{}{"label": " read ", "skill": "tech", "dueDate": "2026-08-29"},
		map[string]interface{}{"label": "write"},
	})
	if err != nil {
		t.Fatalf("valid batch rejected: %v", err)
	}
	if len(inputs) != 2 || inputs[0].Label != "read" {
		t.Errorf("batch parse: %+v", inputs)
	}

	patch, err := PatchTask(decode(t, `{"done":true}`))
	if err != nil || patch.Done == nil || !*patch.Done {
		t.Errorf("patch done: %+v err %v", patch, err)
	}
	if _, err := PatchTask(decode(t, `{}`)); err == nil || err.Code != CodeNoFields {
		t.Errorf("empty patch should be NO_FIELDS: %v", err)
	}
}

func TestProfileValidation(t *testing.T) {
	tests := []struct {
		raw      string
		wantCode string
	}{
		{`{"user_id":"x","name":"A"}`, CodeUserIDNotAllowed},
		{`{"name":5}`, CodeInvalidName},
		{`{"language":[]}`, CodeInvalidLanguage},
		{`{"skills":["a"]}`, CodeInvalidSkills},
		{`{"interests":{"a":1}}`, CodeInvalidInterests},
		{`{"profile":"x"}`, CodeInvalidProfile},
		{`{}`, CodeNoFields},
		{`{"unknown":"field"}`, CodeNoFields},
	}
	for _, tt := range tests {
		_, err := Profile(decode(t, tt.raw))
		if err == nil || err.Code != tt.wantCode {
			t.Errorf("Profile(%s) = %v, want code %s", tt.raw, err, tt.wantCode)
		}
	}

	update, err := Profile(decode(t, `{"name":" Alex ","skills":{"tech":8},"interests":["ml"]}`))
	if err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	if *update.Name != "Alex" || update.Skills["tech"] != float64(8) || len(update.Interests) != 1 {
		t.Errorf("update parse: %+v", update)
	}
}

func TestResourceQueryValidation(t *testing.T) {
	if _, err := Resources("", "", "podcast", "", ""); err == nil || err.Code != CodeInvalidType {
		t.Error("type=podcast should be INVALID_TYPE")
	}
	if _, err := Resources("", "", "", "abc", ""); err == nil || err.Code != CodeInvalidLimit {
		t.Error("limit=abc should be INVALID_LIMIT")
	}
	if _, err := Resources("", "", "", "0", ""); err == nil || err.Code != CodeInvalidLimit {
		t.Error("limit=0 should be INVALID_LIMIT")
	}
	if _, err := Resources("", "", "", "", "-1"); err == nil || err.Code != CodeInvalidOffset {
		t.Error("offset=-1 should be INVALID_OFFSET")
	}

	query, err := Resources("go", "en", "course", "500", "10")
	if err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}
	if query.Limit != 100 {
		t.Errorf("limit should cap at 100, got %d", query.Limit)
	}
	if query.Offset != 10 || query.Tag != "go" {
		t.Errorf("query parse: %+v", query)
	}

	query, err = Resources("", "", "", "", "")
	if err != nil || query.Limit != 50 || query.Offset != 0 {
		t.Errorf("defaults: %+v err %v", query, err)
	}
}
