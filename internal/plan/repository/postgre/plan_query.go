package postgre

const planColumns = `id, user_id, to_char(plan_date, 'YYYY-MM-DD') AS plan_date, title, total_tasks,
	estimated_duration, status, ai_suggestions, time_blocks, created_at, updated_at`

const upsertPlanQuery = `
	INSERT INTO daily_plans (user_id, plan_date, title, total_tasks, estimated_duration, status,
		ai_suggestions, time_blocks, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	ON CONFLICT (user_id, plan_date) DO UPDATE SET
		title = EXCLUDED.title,
		total_tasks = EXCLUDED.total_tasks,
		estimated_duration = EXCLUDED.estimated_duration,
		status = EXCLUDED.status,
		ai_suggestions = EXCLUDED.ai_suggestions,
		time_blocks = EXCLUDED.time_blocks,
		updated_at = NOW()
	RETURNING ` + planColumns

const deleteAssignmentsQuery = `DELETE FROM daily_plan_tasks WHERE daily_plan_id = $1`

const insertAssignmentsQuery = `
	INSERT INTO daily_plan_tasks (daily_plan_id, task_id, scheduled_start_time, scheduled_end_time,
		estimated_duration, ai_optimized)
	VALUES (:daily_plan_id, :task_id, :scheduled_start_time, :scheduled_end_time,
		:estimated_duration, :ai_optimized)`

const getByDateQuery = `SELECT ` + planColumns + ` FROM daily_plans WHERE user_id = $1 AND plan_date = $2`

const listQuery = `SELECT ` + planColumns + ` FROM daily_plans WHERE user_id = $1 ORDER BY plan_date DESC LIMIT $2`
