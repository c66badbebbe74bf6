package queries

const USER_BY_USERNAME = `
	SELECT U.id, U.username, U.password, U.name, U.type
	FROM user U
	WHERE U.username = ?`

const LOAN_DETAILS = `
	SELECT L.id, L.customer_name, L.customer_nic, L.customer_address, L.customer_contact, M.name AS vehicle_model, L.chassis_number, L.financed, COALESCE(B.name, '') AS bank, L.created
	FROM loan L
	LEFT JOIN model M ON M.id = L.model_id
	LEFT JOIN bank B ON B.id = L.bank_id
	WHERE L.id = ?`

const LATEST_LOANS = `
	SELECT L.id, L.customer_name, M.name AS vehicle_model, L.chassis_number, L.financed, COALESCE(B.name, '') AS bank, L.created
	FROM loan L
	LEFT JOIN model M ON M.id = L.model_id
	LEFT JOIN bank B ON B.id = L.bank_id
	ORDER BY L.created DESC
	LIMIT 20`

const DELIVERY_ORDER_BY_LOAN = `
	SELECT DO.id, DO.loan_id, DO.facts, DO.updated
	FROM delivery_order DO
	WHERE DO.loan_id = ?`

const DELETE_DELIVERY_ORDER = `
	DELETE FROM delivery_order WHERE loan_id = ?`

const PAYMENT_RECORD_BY_LOAN = `
	SELECT PR.id, PR.loan_id, PR.record, PR.updated
	FROM payment_record PR
	WHERE PR.loan_id = ?`

const DELETE_PAYMENT_RECORD = `
	DELETE FROM payment_record WHERE loan_id = ?`

const LOAN_DOCUMENTS = `
	SELECT LD.id, D.name AS document, LD.s3region, LD.s3bucket, LD.source
	FROM loan_document LD
	LEFT JOIN document D ON D.id = LD.document_id
	WHERE LD.loan_id = ? AND LD.deleted = 0`
