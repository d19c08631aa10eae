// Package errors provides the structured error type used across the
// narrative engine.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes cover the generic service cases (NotFound,
// InvalidArgument, Internal, ...) and the story domain:
//
//   - CodeInvalidDirection: a move names a direction not connected from the
//     current location. Recoverable, the player picks again.
//   - CodeCharacterDefeated: a hit dropped a character to hp <= 0. The
//     message is the end-of-game narrative text. Only the session
//     orchestrator handles it, by moving the session to game over.
//   - CodeInvalidHeroName: the hero name failed validation; nothing was
//     created.
//   - CodeGameOver: the session already ended in defeat and only accepts exit.
//
// Creating errors:
//
//	err := errors.NotFoundf("location %d not found", id)
//	err := errors.InvalidDirectionf(locationID, "north")
//
// Wrapping errors keeps the code of the innermost Error:
//
//	if err := repo.GetStoryLine(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load story line")
//	}
//
// Handlers convert with ToGRPCError; the code and metadata travel as a
// structpb.Struct status detail and FromGRPCError restores them.
package errors
