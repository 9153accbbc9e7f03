package services

import (
	"fmt"
	"strings"

	"greenview-homes/app/database"
	"greenview-homes/app/models"
)

// PaymentApprovedEmail builds the notification sent when a payment is
// approved.
func PaymentApprovedEmail(mp *models.MonthlyPayment) EmailMessage {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour payment with reference %s covering %s has been approved.\nAmount: %s\n\nThank you for keeping your dues up to date.\n\nGreenview Homes",
		mp.PayerName, mp.TransactionReference, mp.PeriodCovered, mp.Amount.StringFixed(2))
	return EmailMessage{
		To:      mp.PayerEmail,
		Subject: "Payment Approved - " + mp.TransactionReference,
		Body:    body,
	}
}

// PaymentRejectedEmail builds the notification sent when a payment is
// rejected, including the reason.
func PaymentRejectedEmail(mp *models.MonthlyPayment, reason string) EmailMessage {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour payment with reference %s covering %s was not accepted.\nReason: %s\n\nThe covered months have been returned to Unpaid. Please submit a new proof of payment.\n\nGreenview Homes",
		mp.PayerName, mp.TransactionReference, mp.PeriodCovered, reason)
	return EmailMessage{
		To:      mp.PayerEmail,
		Subject: "Payment Rejected - " + mp.TransactionReference,
		Body:    body,
	}
}

// AccountApprovedEmail builds the welcome notification for a newly
// approved resident.
func AccountApprovedEmail(user *models.User) EmailMessage {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour registration for Block %s Lot %s has been approved. You can now sign in to the resident portal.\n\nGreenview Homes",
		user.FullName(), user.Block, user.Lot)
	return EmailMessage{
		To:      user.Email,
		Subject: "Welcome to Greenview Homes",
		Body:    body,
	}
}

// HolderTransferEmail builds the notification sent to the new account
// holder after a transfer.
func HolderTransferEmail(newHolder *models.User) EmailMessage {
	body := fmt.Sprintf(
		"Dear %s,\n\nYou are now the account holder for Block %s Lot %s. Existing dues and payment records for your household have been moved to your account.\n\nGreenview Homes",
		newHolder.FullName(), newHolder.Block, newHolder.Lot)
	return EmailMessage{
		To:      newHolder.Email,
		Subject: "Account Holder Designation",
		Body:    body,
	}
}

// DelayedDuesEmail builds the overdue-dues reminder for one user-year
// group. Payment instructions come from the settings row the caller read.
func DelayedDuesEmail(group *database.DelayedGroup, settings *models.Setting) EmailMessage {
	names := make([]string, len(group.Months))
	for i, m := range group.Months {
		names[i] = models.MonthName(m)
	}
	body := fmt.Sprintf(
		"Dear %s,\n\nOur records show unpaid association dues for %s %d (total %s).\nPlease settle them through the portal or at the association office.\n",
		group.UserName, strings.Join(names, ", "), group.Year, group.Total.StringFixed(2))
	if settings.PaymentInstructions != "" {
		body += "\n" + settings.PaymentInstructions + "\n"
	}
	body += "\n" + settings.AssociationName
	return EmailMessage{
		To:      group.UserEmail,
		Subject: fmt.Sprintf("Overdue Association Dues - %d", group.Year),
		Body:    body,
	}
}
