package game

type Director interface {
	/**
	 * Prepare to play the game's current round. Called again after every retry.
	 */
	Init(*Game)

	/**
	 * Choose the next move, or return false if there is nothing to do
	 */
	Act() (Direction, bool)
}
