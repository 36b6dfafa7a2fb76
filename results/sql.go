package results

const createRunTable = `
CREATE TABLE IF NOT EXISTS runs (
  id varchar primary key,
  time datetime,
  size int,
  seed int,
  player1 varchar,
  player2 varchar,
  games int,
  p1_wins int,
  p2_wins int,
  black_wins int,
  white_wins int,
  draws int
)`

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  run_id varchar not null references runs(id),
  idx int not null,
  p1_color string,
  winner string,
  moves int
)`

const createPlayerView = `
CREATE VIEW IF NOT EXISTS player_games (
  run_id, idx, player, color, win, moves
) AS
SELECT games.run_id, idx, runs.player1, p1_color,
       CASE winner WHEN p1_color THEN 'win' WHEN 'empty' THEN 'tie' ELSE 'lose' END,
       moves
 FROM games JOIN runs ON games.run_id = runs.id
UNION
SELECT games.run_id, idx, runs.player2,
       CASE p1_color WHEN 'black' THEN 'white' ELSE 'black' END,
       CASE winner WHEN p1_color THEN 'lose' WHEN 'empty' THEN 'tie' ELSE 'win' END,
       moves
 FROM games JOIN runs ON games.run_id = runs.id
`

const insertRun = `
INSERT INTO runs (id, time, size, seed, player1, player2, games,
                  p1_wins, p2_wins, black_wins, white_wins, draws)
VALUES (:id, :time, :size, :seed, :player1, :player2, :games,
        :p1_wins, :p2_wins, :black_wins, :white_wins, :draws)
`

const insertGame = `
INSERT INTO games (run_id, idx, p1_color, winner, moves)
VALUES (:run_id, :idx, :p1_color, :winner, :moves)
`

const selectRuns = `
SELECT id, time, size, seed, player1, player2, games,
       p1_wins, p2_wins, black_wins, white_wins, draws
FROM runs ORDER BY time DESC
`

const selectGames = `
SELECT run_id, idx, p1_color, winner, moves
FROM games WHERE run_id = ? ORDER BY idx
`

const selectPlayerRecord = `
SELECT win, count(*) FROM player_games WHERE player = ? GROUP BY win
`
