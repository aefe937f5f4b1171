package services

import "Henteklar/models"

// catalog holds the user-facing messages the API returns, keyed by error code.
var catalog = []models.Translation{
	{Key: "auth/user-not-found", Norwegian: "Bruker ikke funnet", English: "User not found"},
	{Key: "auth/wrong-password", Norwegian: "Feil passord", English: "Wrong password"},
	{Key: "auth/invalid-credential", Norwegian: "Feil e-post eller passord", English: "Wrong e-mail or password"},
	{Key: "auth/invalid-email", Norwegian: "Ugyldig e-postadresse", English: "Invalid e-mail address"},
	{Key: "auth/too-many-requests", Norwegian: "For mange forsøk. Prøv igjen senere.", English: "Too many attempts. Try again later."},
	{Key: "auth/network-request-failed", Norwegian: "Nettverksfeil. Sjekk internettforbindelsen.", English: "Network error. Check your connection."},
	{Key: "auth/user-disabled", Norwegian: "Brukeren er deaktivert", English: "The user is disabled"},
	{Key: "auth/email-already-in-use", Norwegian: "E-postadressen er allerede i bruk", English: "The e-mail address is already in use"},
	{Key: "auth/weak-password", Norwegian: "Passordet er for svakt", English: "The password is too weak"},
	{Key: "auth/provider-not-configured", Norwegian: "Innloggingsmetoden er ikke tilgjengelig", English: "This sign-in method is not available"},
	{Key: "auth/internal-error", Norwegian: "Feil ved innlogging. Prøv igjen.", English: "Sign-in failed. Try again."},
	{Key: "email_in_use", Norwegian: "E-postadressen er allerede i bruk", English: "The e-mail address is already in use"},
	{Key: "passwords_required", Norwegian: "Begge passord må fylles ut", English: "Both passwords are required"},
	{Key: "password_too_weak", Norwegian: "Passordet er for svakt", English: "The password is too weak"},
	{Key: "invalid_email", Norwegian: "Vennligst oppgi en gyldig e-postadresse", English: "Please enter a valid e-mail address"},
	{Key: "password_reset_sent", Norwegian: "Hvis e-postadressen finnes i systemet, vil du motta en lenke for å tilbakestille passordet.", English: "If the e-mail address exists, you will receive a link to reset your password."},
	{Key: "name_required", Norwegian: "Navn må fylles ut", English: "Name is required"},
	{Key: "child_name_required", Norwegian: "Barnets navn må fylles ut", English: "The child's name is required"},
	{Key: "guardian_email_required", Norwegian: "E-postadresse for foresatt mangler", English: "The guardian's e-mail address is missing"},
	{Key: "note_text_required", Norwegian: "Notatet kan ikke være tomt", English: "The note cannot be empty"},
	{Key: "event_title_required", Norwegian: "Tittel må fylles ut", English: "Title is required"},
	{Key: "invalid_date", Norwegian: "Ugyldig dato", English: "Invalid date"},
	{Key: "invalid_recurrence", Norwegian: "Ugyldig gjentakelse", English: "Invalid recurrence rule"},
	{Key: "invalid_action", Norwegian: "Ukjent handling", English: "Unknown action"},
	{Key: "child_id_required", Norwegian: "Barn mangler", English: "Child is missing"},
	{Key: "not_found", Norwegian: "Fant ikke", English: "Not found"},
	{Key: "forbidden", Norwegian: "Ingen tilgang", English: "Access denied"},
	{Key: "unavailable", Norwegian: "Tjenesten er utilgjengelig. Prøv igjen senere.", English: "The service is unavailable. Try again later."},
	{Key: "invalid_request", Norwegian: "Ugyldig forespørsel", English: "Invalid request"},
	{Key: "internal_error", Norwegian: "Noe gikk galt", English: "Something went wrong"},
	{Key: "unauthorized", Norwegian: "Du må logge inn", English: "You need to sign in"},
	{Key: "notification_check_in_title", Norwegian: "Krysset inn", English: "Checked in"},
	{Key: "notification_check_out_title", Norwegian: "Krysset ut", English: "Checked out"},
	{Key: "notification_check_in_body", Norwegian: "%s ble krysset inn kl. %s", English: "%s was checked in at %s"},
	{Key: "notification_check_out_body", Norwegian: "%s ble krysset ut kl. %s", English: "%s was checked out at %s"},
}
