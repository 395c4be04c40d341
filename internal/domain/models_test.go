package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovalStatusValid(t *testing.T) {
	assert.True(t, ApprovalPending.Valid())
	assert.True(t, ApprovalApproved.Valid())
	assert.True(t, ApprovalRejected.Valid())
	assert.False(t, ApprovalStatus("").Valid())
	assert.False(t, ApprovalStatus("Approved").Valid())
	assert.False(t, ApprovalStatus("on-hold").Valid())
}

func TestDropdownListMissing(t *testing.T) {
	list := DropdownList{Name: "candidateDepartment", Options: []string{"Legal", "Operations"}}

	assert.Equal(t, []string{"Engineering"}, list.Missing([]string{"Legal", "Engineering", "Operations"}))
	assert.Nil(t, list.Missing([]string{"Legal"}))
	assert.Equal(t, []string{"Legal"}, DropdownList{}.Missing([]string{"Legal"}))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Acme", Employer{ID: "e1", CompanyName: "Acme"}.Label())
	assert.Equal(t, "e1", Employer{ID: "e1"}.Label())
	assert.Equal(t, "Flutter Dev", Job{ID: "j1", Title: "Flutter Dev"}.Label())
	assert.Equal(t, "j1", Job{ID: "j1"}.Label())
}

func TestEmployerPatchEmpty(t *testing.T) {
	assert.True(t, EmployerPatch{EmployerID: "e1"}.Empty())
	assert.False(t, EmployerPatch{EmployerID: "e1", AddEmptyReason: true}.Empty())
	assert.False(t, EmployerPatch{EmployerID: "e1", ApprovalStatus: ApprovalPending}.Empty())
}
