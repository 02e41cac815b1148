package usecase

import (
	"github.com/lendstack/loan-servicing/internal/application/dto"
	"github.com/lendstack/loan-servicing/internal/domain/model"
)

func toLoanResponse(loan model.Loan, includeDetails bool) dto.LoanResponse {
	resp := dto.LoanResponse{
		ID:                    loan.ID(),
		AccountNumber:         loan.AccountNumber(),
		LoanType:              loan.LoanType(),
		Principal:             loan.Principal(),
		InterestRate:          loan.CurrentRate(),
		InstallmentAmount:     loan.InstallmentAmount(),
		TenureYears:           loan.TenureYears(),
		TotalInstallments:     loan.TotalInstallments(),
		Status:                loan.Status().String(),
		StartDate:             loan.StartDate(),
		EndDate:               loan.EndDate(),
		OutstandingPrincipal:  loan.OutstandingPrincipal(),
		InstallmentsPaid:      loan.InstallmentsPaid(),
		InstallmentsRemaining: loan.InstallmentsRemaining(),
		NextInstallmentDate:   loan.NextInstallmentDate(),
		LastInstallmentDate:   loan.LastInstallmentDate(),
		FinalInstallmentDate:  loan.FinalInstallmentDate(),
		CreatedAt:             loan.CreatedAt(),
		UpdatedAt:             loan.UpdatedAt(),
	}
	if includeDetails {
		for _, inst := range loan.Installments() {
			resp.Schedule = append(resp.Schedule, toInstallmentResponse(inst))
		}
		for _, rc := range loan.RateHistory() {
			resp.RateHistory = append(resp.RateHistory, toRateChangeResponse(rc))
		}
		for _, txn := range loan.Transactions() {
			resp.Transactions = append(resp.Transactions, toTransactionResponse(txn))
		}
	}
	return resp
}

func toInstallmentResponse(inst model.Installment) dto.InstallmentResponse {
	return dto.InstallmentResponse{
		Number:         inst.Number,
		DueDate:        inst.DueDate,
		Amount:         inst.Amount,
		Principal:      inst.Principal,
		Interest:       inst.Interest,
		OpeningBalance: inst.OpeningBalance,
		ClosingBalance: inst.ClosingBalance,
		DaysInPeriod:   inst.DaysInPeriod,
		Status:         inst.Status.String(),
		PaidDate:       inst.PaidDate,
		PaidAmount:     inst.PaidAmount,
	}
}

func toRateChangeResponse(rc model.RateChange) dto.RateChangeResponse {
	return dto.RateChangeResponse{
		ID:            rc.ID,
		Rate:          rc.Rate,
		EffectiveFrom: rc.EffectiveFrom,
		EffectiveTill: rc.EffectiveTill,
		ChangedBy:     rc.ChangedBy,
		Reason:        rc.Reason,
		CreatedAt:     rc.CreatedAt,
	}
}

func toTransactionResponse(txn model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                txn.ID,
		InstallmentNumber: txn.InstallmentNumber,
		Date:              txn.Date,
		Type:              txn.Type,
		Amount:            txn.Amount,
		PrincipalAmount:   txn.PrincipalAmount,
		InterestAmount:    txn.InterestAmount,
		Method:            txn.Method,
		Reference:         txn.Reference,
		Remarks:           txn.Remarks,
	}
}
