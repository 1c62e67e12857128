// Package errors provides the structured error type used across rpg-dm.
//
// Every layer returns *Error values carrying a Code, a player-safe Message,
// an optional Cause and free-form metadata:
//
//	err := errors.InvalidArgument("party must have between 1 and 6 heroes").
//	    WithMeta("selected", len(ids))
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Put(ctx, key, data); err != nil {
//	    return errors.Wrapf(err, "failed to store %s", key)
//	}
//
// # Layer guidelines
//
// Repository layer returns NotFound for missing keys and Internal for storage
// failures.
//
// Orchestrator layer returns InvalidArgument for player input that fails
// validation, FailedPrecondition for intents issued in the wrong phase or
// while a narration request is in flight, and Unavailable when the narrative
// generator could not produce a usable response.
//
// Handler layer renders the code with Code.HTTPStatus and the message as the
// user-visible prompt.
package errors
