package service

import "fmt"

func magicLinkEmailTemplate(magicURL, appName string) (string, string) {
	subject := fmt.Sprintf("Sign in to %s", appName)
	body := fmt.Sprintf(`Click this link to sign in to your account:
%s

This link expires in 10 minutes and can only be used once.

If you didn't request this, ignore this email.

Best,
The %s Team`, magicURL, appName)

	return subject, body
}

func forgotPasswordEmailTemplate(signInURL, appName string) (string, string) {
	subject := fmt.Sprintf("Reset your password for %s", appName)
	body := fmt.Sprintf(`You requested to reset your password. For security, we'll remove your password and sign you in with this link:
%s

After signing in, you can set a new password in Settings.

This link expires in 10 minutes and can only be used once.

If you didn't request this, you can safely ignore this email. Your password won't be changed.

Best,
The %s Team`, signInURL, appName)

	return subject, body
}

func emailChangeVerificationTemplate(name, verifyURL, appName string) (string, string) {
	subject := fmt.Sprintf("Verify your new email for %s", appName)
	body := fmt.Sprintf(`Hi %s,

You requested to change your email address. Please verify your new email by clicking this link:
%s

This link expires in 24 hours.

If you didn't request this, ignore this email.

Best,
The %s Team`, name, verifyURL, appName)

	return subject, body
}

func welcomeEmailTemplate(name, appURL, appName string) (string, string) {
	subject := fmt.Sprintf("Welcome to %s", appName)
	body := fmt.Sprintf(`Hi %s,

Your account is active. One day at a time.

Get started: %s

Best,
The %s Team`, name, appURL, appName)

	return subject, body
}

func milestoneEmailTemplate(name, title, description, appName string) (string, string) {
	subject := fmt.Sprintf("Milestone unlocked: %s", title)
	body := fmt.Sprintf(`Hi %s,

%s

%s

We're proud of you.

The %s Team`, name, title, description, appName)

	return subject, body
}

func accountDeletedEmailTemplate(name, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s account has been deleted", appName)
	body := fmt.Sprintf(`Hi %s,

Your account and all associated data have been permanently deleted.

Thank you for letting us be part of your journey.

The %s Team`, name, appName)

	return subject, body
}

func emailChangeNotificationTemplate(name, newEmail, appName string) (string, string) {
	subject := fmt.Sprintf("Your %s email is being changed", appName)
	body := fmt.Sprintf(`Hi %s,

A request was made to change your account email to %s.

If this was you, no action is needed. Verify the new address to complete the change.

If this wasn't you, please contact support immediately.

The %s Team`, name, newEmail, appName)

	return subject, body
}
