// Package printing contains the Printing bounded context.
// This context is responsible for managing print templates and print jobs
// for HR documents such as payslips, expense claims, and attendance
// summaries.
package printing
