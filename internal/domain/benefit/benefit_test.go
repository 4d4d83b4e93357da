package benefit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlans(t *testing.T) {
	all := Plans()
	require.Len(t, all, 3)
	assert.Equal(t, "Health Insurance", all[0].Name)

	all[0].Name = "changed"
	assert.Equal(t, "Health Insurance", Plans()[0].Name)

	dental, ok := PlanByName("Dental Insurance")
	require.True(t, ok)
	assert.Equal(t, 75.0, dental.MonthlyCost)

	_, ok = PlanByName("Pet Insurance")
	assert.False(t, ok)
}

func TestCreateBenefitRequestValidate(t *testing.T) {
	req := CreateBenefitRequest{EmployeeID: 1, BenefitPlan: "Vision Insurance"}
	assert.NoError(t, req.Validate())

	req = CreateBenefitRequest{EmployeeID: 1, BenefitPlan: "Pet Insurance"}
	assert.ErrorContains(t, req.Validate(), "unknown benefit plan")

	req = CreateBenefitRequest{BenefitPlan: "Vision Insurance", Status: "archived"}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "employeeId")
	assert.Contains(t, err.Error(), "status")
}
