package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentChoiceEncode(t *testing.T) {
	var d DepartmentChoice
	d.SetFirst("技术部")
	d.SetSecond("宣传部")
	assert.Equal(t, `["技术部","宣传部"]`, d.Encode())

	//无 means "no second choice" and never reaches the backend
	d.SetSecond(NoneOption)
	assert.Equal(t, `["技术部"]`, d.Encode())

	assert.Equal(t, "[]", DepartmentChoice{}.Encode())
	assert.True(t, DepartmentChoice{Second: NoneOption}.Empty())
}

func TestDepartmentChoiceNoDuplicates(t *testing.T) {
	var d DepartmentChoice
	d.SetFirst("技术部")
	d.SetSecond("技术部")
	assert.Equal(t, "", d.First, "picking the same department second should clear first")
	assert.Equal(t, "技术部", d.Second)

	d.SetFirst("技术部")
	assert.Equal(t, "", d.Second, "picking the same department first should clear second")
}

func TestDecodeDepartments(t *testing.T) {
	d := DecodeDepartments(`["技术部","宣传部"]`)
	assert.Equal(t, "技术部", d.First)
	assert.Equal(t, "宣传部", d.Second)

	assert.Equal(t, DepartmentChoice{}, DecodeDepartments(""))
	assert.Equal(t, DepartmentChoice{}, DecodeDepartments("not-json"), "malformed input degrades to empty")
}

func TestInterviewTimeEncode(t *testing.T) {
	tt := InterviewTime{First: "周六上午", Second: "周日下午", CanAttend: "yes"}
	assert.JSONEq(t, `{"first":"周六上午","second":"周日下午","canAttend":"yes","customTime":""}`, tt.Encode())

	//declining in-person attendance drops both slots
	tt.CanAttend = "no"
	tt.CustomTime = "线上任意时间"
	assert.JSONEq(t, `{"first":"","second":"","canAttend":"no","customTime":"线上任意时间"}`, tt.Encode())
}

func TestInterviewTimeDefaultsToAttending(t *testing.T) {
	tt := InterviewTime{First: "周六上午"}
	assert.JSONEq(t, `{"first":"周六上午","second":"","canAttend":"yes","customTime":""}`, tt.Encode())

	decoded := DecodeInterviewTime(`{"first":"周六上午","second":""}`)
	assert.Equal(t, "yes", decoded.CanAttend)
	assert.Equal(t, "yes", DecodeInterviewTime("").CanAttend)
	assert.Equal(t, "yes", DecodeInterviewTime("{bad").CanAttend)
}

func TestInterviewTimeNoDuplicateSlots(t *testing.T) {
	var tt InterviewTime
	tt.SetFirst("周六上午")
	tt.SetSecond("周六上午")
	assert.Equal(t, "", tt.First)
	assert.Equal(t, "周六上午", tt.Second)
}

func TestTechStackCodec(t *testing.T) {
	assert.Equal(t, `["Go","Rust"]`, EncodeTechStack([]string{"Go", "", "  ", "Rust"}))
	assert.Equal(t, "[]", EncodeTechStack(nil))

	assert.Equal(t, []string{"Go", "Rust"}, DecodeTechStack(`["Go","Rust"]`))
	assert.Nil(t, DecodeTechStack(""))
	assert.Nil(t, DecodeTechStack("not-json"))
}
